package model

import (
	"testing"
	"time"
)

func TestNewTodoFromCreate(t *testing.T) {
	expiry := time.Date(2024, 5, 30, 16, 0, 0, 0, time.UTC)
	req := CreateTodoRequest{
		Title:           "Buy groceries",
		Description:     "Milk",
		PercentComplete: 30,
		ExpiryDate:      expiry,
	}

	todo := NewTodoFromCreate(req)

	if todo.ID != 0 {
		t.Errorf("ID = %d, want 0 before persistence", todo.ID)
	}
	if todo.Title != req.Title || todo.Description != req.Description || todo.PercentComplete != req.PercentComplete {
		t.Errorf("NewTodoFromCreate() = %+v, want fields from %+v", todo, req)
	}
	if !todo.ExpiryDate.Equal(expiry) {
		t.Errorf("ExpiryDate = %v, want %v", todo.ExpiryDate, expiry)
	}
	if todo.IsCompleted {
		t.Error("IsCompleted = true, want false")
	}
}

func TestApplyUpdate(t *testing.T) {
	todo := &Todo{
		ID:              7,
		Title:           "old",
		Description:     "old desc",
		PercentComplete: 10,
		ExpiryDate:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		IsCompleted:     true,
	}

	newExpiry := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	todo.ApplyUpdate(UpdateTodoRequest{
		ID:              99, // must not leak into the entity
		Title:           "new",
		Description:     "new desc",
		PercentComplete: 55,
		ExpiryDate:      newExpiry,
	})

	if todo.ID != 7 {
		t.Errorf("ApplyUpdate() changed ID to %d", todo.ID)
	}
	if !todo.IsCompleted {
		t.Error("ApplyUpdate() changed IsCompleted")
	}
	if todo.Title != "new" || todo.Description != "new desc" || todo.PercentComplete != 55 {
		t.Errorf("ApplyUpdate() = %+v", todo)
	}
	if !todo.ExpiryDate.Equal(newExpiry) {
		t.Errorf("ExpiryDate = %v, want %v", todo.ExpiryDate, newExpiry)
	}
}

func TestMarkDoneAndSetPercent(t *testing.T) {
	todo := &Todo{Title: "x"}

	todo.MarkDone()
	if !todo.IsCompleted {
		t.Error("MarkDone() did not set IsCompleted")
	}

	todo.SetPercentComplete(85)
	if todo.PercentComplete != 85 {
		t.Errorf("SetPercentComplete(85) = %d", todo.PercentComplete)
	}
}
