package services

import (
	"encoding/json"

	"checktrack/internal/models"
	"checktrack/internal/store"
)

// ReportService is the typed facade over the daily-reports collection.
type ReportService struct {
	col *store.Collection[models.DailyReport, *models.DailyReport]
}

func NewReportService(col *store.Collection[models.DailyReport, *models.DailyReport]) *ReportService {
	return &ReportService{col: col}
}

func (s *ReportService) List() []models.DailyReport {
	return s.col.List()
}

func (s *ReportService) Get(id string) (models.DailyReport, error) {
	return s.col.Get(id)
}

func (s *ReportService) ListByUser(userID string) []models.DailyReport {
	return s.col.Query(func(r models.DailyReport) bool { return r.UserID == userID })
}

// GetByUserAndDate returns the one report for (user, date). The one-per-date
// invariant is upheld by the lifecycle engine's lookup-then-create; when
// duplicates do exist the first match wins.
func (s *ReportService) GetByUserAndDate(userID, date string) (models.DailyReport, error) {
	matches := s.col.Query(func(r models.DailyReport) bool {
		return r.UserID == userID && r.Date == date
	})
	if len(matches) == 0 {
		return models.DailyReport{}, store.ErrNotFound
	}
	return matches[0], nil
}

func (s *ReportService) Create(r models.DailyReport) (models.DailyReport, error) {
	return s.col.Insert(r)
}

func (s *ReportService) Update(id string, patch map[string]json.RawMessage) (models.DailyReport, error) {
	return s.col.Update(id, patch)
}

func (s *ReportService) Delete(id string) error {
	return s.col.Delete(id)
}
