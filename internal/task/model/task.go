package model

import (
	"time"

	"gorm.io/gorm"
)

// Task status values. StatusDeleted is a logical state reached only through
// soft delete; the record stays in place until a hard delete removes it.
const (
	StatusTodo       = "todo"
	StatusInProgress = "inProgress"
	StatusCompleted  = "completed"
	StatusDeleted    = "deleted"
)

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusDeleted:
		return true
	}
	return false
}

// Task represents a task entity in the system.
// Matches the tasks table schema.
type Task struct {
	ID        string     `gorm:"primaryKey;column:id;type:varchar(36)"                                            json:"id"`
	Name      string     `gorm:"column:name;type:varchar(255);not null"                                           json:"name"`
	TeamID    string     `gorm:"column:team_id;type:varchar(36);not null;index:idx_tasks_team_id"                 json:"team_id"`
	Status    string     `gorm:"column:status;type:task_status_enum;not null;default:'todo';index:idx_tasks_status" json:"status"`
	Notes     string     `gorm:"column:notes;type:text;not null;default:''"                                       json:"notes"`
	DueDate   *time.Time `gorm:"column:due_date;type:timestamptz"                                                 json:"due_date,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                        json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                        json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TaskMember represents one entry of a task's member snapshot. The snapshot is
// taken from the team at creation time and never follows later team changes.
// Matches the task_members table schema.
type TaskMember struct {
	ID     int64  `gorm:"primaryKey;column:id;type:bigserial"                                     json:"id"`
	TaskID string `gorm:"column:task_id;type:varchar(36);not null;index:idx_task_members_task_id" json:"task_id"`
	UserID string `gorm:"column:user_id;type:varchar(36);not null"                                json:"user_id"`
}

// TableName specifies the table name for GORM.
func (TaskMember) TableName() string {
	return "task_members"
}
