package models

import "time"

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ChecklistItem is a manager-authored sub-step inside a TaskProgress. It has
// no existence outside its report; the id exists only for list diffing.
type ChecklistItem struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Timestamp   time.Time `json:"timestamp"`
}

// TaskProgress is the per-report mutable state for one task. Status moves
// forward only: not_started -> in_progress -> completed.
type TaskProgress struct {
	TaskID         string          `json:"taskId"`
	Status         TaskStatus      `json:"status"`
	StartTime      *time.Time      `json:"startTime,omitempty"`
	EndTime        *time.Time      `json:"endTime,omitempty"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	Notes          string          `json:"notes,omitempty"`
}

// DailyReport is one manager's record for one calendar date (YYYY-MM-DD).
// At most one report exists per (user, date); that invariant is upheld by
// lookup-then-create in the lifecycle engine, not by a store constraint.
type DailyReport struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Date      string         `json:"date"`
	Completed bool           `json:"completed"`
	Tasks     []TaskProgress `json:"tasks"`
}

func (r *DailyReport) DocID() string      { return r.ID }
func (r *DailyReport) SetDocID(id string) { r.ID = id }
