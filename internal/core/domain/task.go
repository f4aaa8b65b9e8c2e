package domain

import (
	"errors"
	"time"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

var ErrTaskNotFound = errors.New("task not found")
var ErrNotTaskOwner = errors.New("not authorized")

// Task is the core aggregate. UserID is fixed at creation and never
// reassigned; every read and mutation is gated on it.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	UserID      string     `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
}
