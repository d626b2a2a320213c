package handlers

import (
	"encoding/json"
	"net/http"

	"checktrack/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, a.reports.List())
}

func (a *API) ListUserReports(c *gin.Context) {
	reports := a.reports.ListByUser(c.Param("userId"))
	if reports == nil {
		reports = []models.DailyReport{}
	}
	c.JSON(http.StatusOK, reports)
}

func (a *API) GetReport(c *gin.Context) {
	report, err := a.reports.Get(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "report not found", "failed to load report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (a *API) GetUserReportByDate(c *gin.Context) {
	report, err := a.reports.GetByUserAndDate(c.Param("userId"), c.Param("date"))
	if err != nil {
		notFoundOr(c, err, "report not found", "failed to load report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (a *API) CreateReport(c *gin.Context) {
	var report models.DailyReport
	if err := c.ShouldBindJSON(&report); err != nil {
		respondError(c, http.StatusBadRequest, "invalid report payload")
		return
	}

	created, err := a.reports.Create(report)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save report")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReport applies a shallow merge: a task-level change arrives as the
// full corrected tasks list, not as a nested patch.
func (a *API) UpdateReport(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid report payload")
		return
	}

	updated, err := a.reports.Update(c.Param("id"), patch)
	if err != nil {
		notFoundOr(c, err, "report not found", "failed to update report")
		return
	}
	c.JSON(http.StatusOK, updated)
}
