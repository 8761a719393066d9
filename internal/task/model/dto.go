// Package model provides domain models and DTOs for the task module.
package model

import "time"

// CreateTaskRequest represents the request to create a task. The task's member
// set is snapshotted from the referenced team, not supplied by the caller.
type CreateTaskRequest struct {
	Name    string     `json:"name" binding:"required"`
	TeamID  string     `json:"team_id" binding:"required"`
	Notes   string     `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateTaskRequest represents a task patch. Nil fields are left untouched;
// present fields overwrite the stored value (last write wins per field).
type UpdateTaskRequest struct {
	Name    *string    `json:"name"`
	Status  *string    `json:"status"`
	Notes   *string    `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

// TeamRef is the team projection the lifecycle engine needs: display name plus
// the current membership used for the snapshot and notification targets.
type TeamRef struct {
	ID      string
	Name    string
	Members []string
}

// TaskResponse represents a task with its member snapshot.
type TaskResponse struct {
	Task
	Members []string `json:"members"`
}

// NewTaskResponse projects a task and its member snapshot into the API shape.
func NewTaskResponse(t *Task, members []string) *TaskResponse {
	if members == nil {
		members = []string{}
	}
	return &TaskResponse{Task: *t, Members: members}
}
