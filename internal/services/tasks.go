package services

import (
	"encoding/json"
	"sort"

	"checktrack/internal/models"
	"checktrack/internal/store"
)

// TaskService is the typed facade over the check-definition collection.
// Ordering is caller-managed: reordering means swapping the order values of
// two tasks, there is no renumbering or gap filling.
type TaskService struct {
	col *store.Collection[models.Task, *models.Task]
}

func NewTaskService(col *store.Collection[models.Task, *models.Task]) *TaskService {
	return &TaskService{col: col}
}

// List returns tasks in collection order, as stored.
func (s *TaskService) List() []models.Task {
	return s.col.List()
}

// ListOrdered returns tasks sorted by their order value. Used where execution
// ordering matters, e.g. when a report snapshots the task set.
func (s *TaskService) ListOrdered() []models.Task {
	tasks := s.col.List()
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks
}

func (s *TaskService) Get(id string) (models.Task, error) {
	return s.col.Get(id)
}

func (s *TaskService) Create(t models.Task) (models.Task, error) {
	return s.col.Insert(t)
}

func (s *TaskService) Update(id string, patch map[string]json.RawMessage) (models.Task, error) {
	return s.col.Update(id, patch)
}

func (s *TaskService) Delete(id string) error {
	return s.col.Delete(id)
}
