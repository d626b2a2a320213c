// Package report owns the daily-report lifecycle: one report per manager per
// calendar date, a forward-only status machine per task, checklist and note
// mutation, and submission/reopening. It is built entirely on top of the
// reports and tasks resource services.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"checktrack/internal/ids"
	"checktrack/internal/models"
	"checktrack/internal/services"
	"checktrack/internal/store"
)

// ErrBadTransition is returned when a task status change does not follow
// not_started -> in_progress -> completed.
var ErrBadTransition = errors.New("invalid task status transition")

// ErrTaskNotInReport is returned when a report carries no progress entry for
// the given task. Tasks defined after the report was created are the usual
// cause: a report's task set is a snapshot taken at creation time.
var ErrTaskNotInReport = errors.New("task not part of report")

type Engine struct {
	reports *services.ReportService
	tasks   *services.TaskService
}

func NewEngine(reports *services.ReportService, tasks *services.TaskService) *Engine {
	return &Engine{reports: reports, tasks: tasks}
}

// GetOrCreateForDate returns the report for (userID, date), creating it on
// first access with one not_started progress entry per task currently
// defined. Tasks added later never appear on already-created reports.
func (e *Engine) GetOrCreateForDate(userID, date string) (models.DailyReport, error) {
	existing, err := e.reports.GetByUserAndDate(userID, date)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.DailyReport{}, err
	}

	fresh := models.DailyReport{
		UserID:    userID,
		Date:      date,
		Completed: false,
		Tasks:     []models.TaskProgress{},
	}
	for _, t := range e.tasks.ListOrdered() {
		fresh.Tasks = append(fresh.Tasks, models.TaskProgress{
			TaskID:         t.ID,
			Status:         models.TaskNotStarted,
			ChecklistItems: []models.ChecklistItem{},
		})
	}
	return e.reports.Create(fresh)
}

// StartTask moves the task's progress from not_started to in_progress and
// stamps its start time.
func (e *Engine) StartTask(reportID, taskID string) (models.DailyReport, error) {
	return e.mutateTask(reportID, taskID, func(tp *models.TaskProgress) error {
		if tp.Status != models.TaskNotStarted {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, tp.Status, models.TaskInProgress)
		}
		now := time.Now().UTC()
		tp.Status = models.TaskInProgress
		tp.StartTime = &now
		return nil
	})
}

// CompleteTask moves the task's progress from in_progress to completed and
// stamps its end time. Completion is terminal and cannot be skipped into.
func (e *Engine) CompleteTask(reportID, taskID string) (models.DailyReport, error) {
	return e.mutateTask(reportID, taskID, func(tp *models.TaskProgress) error {
		if tp.Status != models.TaskInProgress {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, tp.Status, models.TaskCompleted)
		}
		now := time.Now().UTC()
		tp.Status = models.TaskCompleted
		tp.EndTime = &now
		return nil
	})
}

// AddChecklistItem appends a new unchecked item to the task's checklist.
// Checklist mutation carries no status guard: items may be added in any
// state, the presentation layer decides what to offer.
func (e *Engine) AddChecklistItem(reportID, taskID, description string) (models.DailyReport, error) {
	return e.mutateTask(reportID, taskID, func(tp *models.TaskProgress) error {
		tp.ChecklistItems = append(tp.ChecklistItems, models.ChecklistItem{
			ID:          ids.New(),
			TaskID:      taskID,
			Description: description,
			Completed:   false,
			Timestamp:   time.Now().UTC(),
		})
		return nil
	})
}

// SetChecklistItem checks or unchecks one checklist item.
func (e *Engine) SetChecklistItem(reportID, taskID, itemID string, completed bool) (models.DailyReport, error) {
	return e.mutateTask(reportID, taskID, func(tp *models.TaskProgress) error {
		for i := range tp.ChecklistItems {
			if tp.ChecklistItems[i].ID == itemID {
				tp.ChecklistItems[i].Completed = completed
				return nil
			}
		}
		return fmt.Errorf("checklist item %s: %w", itemID, store.ErrNotFound)
	})
}

// SetNotes replaces the free-text notes on the task's progress.
func (e *Engine) SetNotes(reportID, taskID, notes string) (models.DailyReport, error) {
	return e.mutateTask(reportID, taskID, func(tp *models.TaskProgress) error {
		tp.Notes = notes
		return nil
	})
}

// Complete marks the report submitted. Progress is not validated: any subset
// of tasks, including none, may be submitted.
func (e *Engine) Complete(reportID string) (models.DailyReport, error) {
	return e.setCompleted(reportID, true)
}

// Reopen makes a submitted report editable again. A report may be reopened
// and re-completed any number of times.
func (e *Engine) Reopen(reportID string) (models.DailyReport, error) {
	return e.setCompleted(reportID, false)
}

func (e *Engine) setCompleted(reportID string, completed bool) (models.DailyReport, error) {
	raw, _ := json.Marshal(completed)
	return e.reports.Update(reportID, map[string]json.RawMessage{"completed": raw})
}

// mutateTask rewrites the matching progress entry and persists the report
// with the whole task list replaced, per the store's shallow-merge contract.
func (e *Engine) mutateTask(reportID, taskID string, mutate func(*models.TaskProgress) error) (models.DailyReport, error) {
	rep, err := e.reports.Get(reportID)
	if err != nil {
		return models.DailyReport{}, err
	}

	idx := -1
	for i := range rep.Tasks {
		if rep.Tasks[i].TaskID == taskID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.DailyReport{}, fmt.Errorf("task %s in report %s: %w", taskID, reportID, ErrTaskNotInReport)
	}

	if err := mutate(&rep.Tasks[idx]); err != nil {
		return models.DailyReport{}, err
	}

	tasksRaw, err := json.Marshal(rep.Tasks)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("encode task list: %w", err)
	}
	return e.reports.Update(reportID, map[string]json.RawMessage{"tasks": tasksRaw})
}
