package models

// Task is a check definition managed by the super-administrator. Order drives
// display and execution ordering; it is caller-managed (reordering swaps the
// values of two tasks) and not guaranteed unique.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Order       int    `json:"order"`
}

func (t *Task) DocID() string      { return t.ID }
func (t *Task) SetDocID(id string) { t.ID = id }
