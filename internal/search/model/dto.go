// Package model provides DTOs for the cross-entity search module.
package model

import (
	"errors"
	"time"
)

var (
	// ErrQueryTooShort indicates the trimmed query is under the minimum length.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
)

// MemberProjection is the member summary attached to task results.
type MemberProjection struct {
	UserID string `json:"user_id" gorm:"column:user_id"`
	Name   string `json:"name"    gorm:"column:name"`
	Title  string `json:"title"   gorm:"column:title"`
	Role   string `json:"role"    gorm:"column:role"`
}

// TaskResult is one task hit, enriched with its team name and members.
type TaskResult struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Notes     string             `json:"notes"`
	Status    string             `json:"status"`
	DueDate   *time.Time         `json:"due_date,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	TeamName  string             `json:"team_name"`
	Members   []MemberProjection `json:"members"`
}

// UserResult is one user hit.
type UserResult struct {
	ID    string `json:"id"    gorm:"column:id"`
	Name  string `json:"name"  gorm:"column:name"`
	Title string `json:"title" gorm:"column:title"`
	Role  string `json:"role"  gorm:"column:role"`
	Email string `json:"email" gorm:"column:email"`
}

// Response is the merged search result across both collections.
type Response struct {
	Tasks []TaskResult `json:"tasks"`
	Users []UserResult `json:"users"`
}
