package handler

import "time"

// messageResponse is the envelope for non-validation errors and for simple
// confirmation bodies.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=High Medium Low"`
	DueDate     *time.Time `json:"dueDate"`
}

// updateTaskRequest uses pointer fields so a partial update can distinguish
// "key absent, keep the stored value" from "key present, overwrite" — an
// explicit empty description clears the field.
type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=High Medium Low"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted *bool      `json:"isCompleted"`
}
