package model

import (
	"time"
)

// CreateTodoRequest is the payload for creating a todo. The ID is assigned
// by the store, never by the caller.
type CreateTodoRequest struct {
	Title           string    `json:"title" validate:"required,max=100" example:"Buy groceries"`
	Description     string    `json:"description" example:"Milk, bread, and fruits"`
	PercentComplete int       `json:"percentComplete" validate:"gte=0,lte=100" example:"0"`
	ExpiryDate      time.Time `json:"expiryDate" validate:"required" example:"2024-05-30T16:00:00Z"`
}

// UpdateTodoRequest is the payload for a full update of an existing todo.
// The ID must match the id in the request path.
type UpdateTodoRequest struct {
	ID              int       `json:"id" validate:"required" example:"1"`
	Title           string    `json:"title" validate:"required,max=100" example:"Update weekly report"`
	Description     string    `json:"description" example:"Finish and send by EOD"`
	PercentComplete int       `json:"percentComplete" validate:"gte=0,lte=100" example:"40"`
	ExpiryDate      time.Time `json:"expiryDate" validate:"required" example:"2024-05-30T16:00:00Z"`
}

// SetPercentRequest is the payload for setting the completion percentage.
type SetPercentRequest struct {
	PercentComplete int `json:"percentComplete" validate:"gte=0,lte=100" example:"75"`
}
