// Package repository provides read-only data access for cross-entity search.
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	searchModel "github.com/BaltasisKos/Task-Manager-Server/internal/search/model"
)

// resultLimit caps each collection's result set.
const resultLimit = 10

// unassignedTeam is the placeholder shown when a task's team cannot be resolved.
const unassignedTeam = "Unassigned"

// Repository defines the read-only queries behind cross-entity search.
type Repository interface {
	// SearchTasks matches tasks on name, notes or status, excluding
	// soft-deleted ones, newest first.
	SearchTasks(ctx context.Context, query string) ([]searchModel.TaskResult, error)

	// SearchUsers matches active users on name, title, role or email,
	// ordered by name.
	SearchUsers(ctx context.Context, query string) ([]searchModel.UserResult, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new search repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// taskRow is the raw task hit before member enrichment.
type taskRow struct {
	ID        string     `gorm:"column:id"`
	Name      string     `gorm:"column:name"`
	Notes     string     `gorm:"column:notes"`
	Status    string     `gorm:"column:status"`
	DueDate   *time.Time `gorm:"column:due_date"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	TeamName  *string    `gorm:"column:team_name"`
}

// SearchTasks matches tasks on name, notes or status, excluding soft-deleted
// ones. Each hit is enriched with its team name and member projections.
func (r *repository) SearchTasks(ctx context.Context, query string) ([]searchModel.TaskResult, error) {
	pattern := "%" + query + "%"

	var rows []taskRow
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id, tasks.name, tasks.notes, tasks.status, tasks.due_date, tasks.created_at, teams.name AS team_name").
		Joins("LEFT JOIN teams ON teams.id = tasks.team_id").
		Where("tasks.status <> ?", "deleted").
		Where(
			r.db.Where("LOWER(tasks.name) LIKE LOWER(?)", pattern).
				Or("LOWER(tasks.notes) LIKE LOWER(?)", pattern).
				Or("LOWER(tasks.status) LIKE LOWER(?)", pattern),
		).
		Order("tasks.created_at DESC").
		Limit(resultLimit).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	results := make([]searchModel.TaskResult, 0, len(rows))
	for _, row := range rows {
		members, err := r.taskMembers(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		teamName := unassignedTeam
		if row.TeamName != nil && *row.TeamName != "" {
			teamName = *row.TeamName
		}

		results = append(results, searchModel.TaskResult{
			ID:        row.ID,
			Name:      row.Name,
			Notes:     row.Notes,
			Status:    row.Status,
			DueDate:   row.DueDate,
			CreatedAt: row.CreatedAt,
			TeamName:  teamName,
			Members:   members,
		})
	}

	return results, nil
}

// taskMembers returns member projections for one task.
func (r *repository) taskMembers(ctx context.Context, taskID string) ([]searchModel.MemberProjection, error) {
	var members []searchModel.MemberProjection
	err := r.db.WithContext(ctx).
		Table("task_members").
		Select("task_members.user_id, users.name, users.title, users.role").
		Joins("JOIN users ON users.id = task_members.user_id").
		Where("task_members.task_id = ?", taskID).
		Order("users.name ASC").
		Scan(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []searchModel.MemberProjection{}
	}
	return members, nil
}

// SearchUsers matches active users on name, title, role or email.
func (r *repository) SearchUsers(ctx context.Context, query string) ([]searchModel.UserResult, error) {
	pattern := "%" + query + "%"

	var users []searchModel.UserResult
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, title, role, email").
		Where("is_active = ?", true).
		Where(
			r.db.Where("LOWER(name) LIKE LOWER(?)", pattern).
				Or("LOWER(title) LIKE LOWER(?)", pattern).
				Or("LOWER(role) LIKE LOWER(?)", pattern).
				Or("LOWER(email) LIKE LOWER(?)", pattern),
		).
		Order("name ASC").
		Limit(resultLimit).
		Scan(&users).Error

	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []searchModel.UserResult{}
	}
	return users, nil
}
