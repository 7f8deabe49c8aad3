package model

import (
	"time"
)

// Todo is a single task tracked by the service.
type Todo struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PercentComplete int       `json:"percentComplete"`
	ExpiryDate      time.Time `json:"expiryDate"`
	IsCompleted     bool      `json:"isCompleted"`
}

// NewTodoFromCreate builds a new entity from a create payload. The ID stays
// zero until the store assigns one; IsCompleted starts false.
func NewTodoFromCreate(req CreateTodoRequest) *Todo {
	return &Todo{
		Title:           req.Title,
		Description:     req.Description,
		PercentComplete: req.PercentComplete,
		ExpiryDate:      req.ExpiryDate,
	}
}

// ApplyUpdate overwrites the mutable fields from an update payload.
// ID and IsCompleted are not touched.
func (t *Todo) ApplyUpdate(req UpdateTodoRequest) {
	t.Title = req.Title
	t.Description = req.Description
	t.PercentComplete = req.PercentComplete
	t.ExpiryDate = req.ExpiryDate
}

// MarkDone marks the todo as completed.
func (t *Todo) MarkDone() {
	t.IsCompleted = true
}

// SetPercentComplete sets the completion percentage.
func (t *Todo) SetPercentComplete(percent int) {
	t.PercentComplete = percent
}
