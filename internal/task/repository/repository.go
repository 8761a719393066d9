// Package repository provides data access layer for the task module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	taskModel "github.com/BaltasisKos/Task-Manager-Server/internal/task/model"
	teamModel "github.com/BaltasisKos/Task-Manager-Server/internal/team/model"
)

// Repository defines the interface for task data access operations.
type Repository interface {
	// Create persists a new task with its member snapshot.
	Create(ctx context.Context, task *taskModel.Task, memberIDs []string) (*taskModel.Task, error)

	// GetByID finds a task by ID.
	GetByID(ctx context.Context, id string) (*taskModel.Task, error)

	// GetMemberIDs returns the member snapshot of a task.
	GetMemberIDs(ctx context.Context, taskID string) ([]string, error)

	// Save re-persists an existing task record.
	Save(ctx context.Context, task *taskModel.Task) (*taskModel.Task, error)

	// List returns all tasks, newest first.
	List(ctx context.Context) ([]taskModel.Task, error)

	// ListArchived returns all soft-deleted tasks, newest first.
	ListArchived(ctx context.Context) ([]taskModel.Task, error)

	// Delete physically removes a task and its member snapshot.
	Delete(ctx context.Context, id string) error

	// GetTeamRef resolves a team's name and current membership.
	GetTeamRef(ctx context.Context, teamID string) (*taskModel.TeamRef, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new task repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new task with its member snapshot.
func (r *repository) Create(ctx context.Context, task *taskModel.Task, memberIDs []string) (*taskModel.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		for _, userID := range memberIDs {
			if userID == "" {
				continue
			}
			member := &taskModel.TaskMember{TaskID: task.ID, UserID: userID}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetByID finds a task by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*taskModel.Task, error) {
	var task taskModel.Task
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&task).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskModel.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// GetMemberIDs returns the member snapshot of a task.
func (r *repository) GetMemberIDs(ctx context.Context, taskID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("task_members").
		Select("user_id").
		Where("task_id = ?", taskID).
		Order("user_id ASC").
		Scan(&ids).Error

	if err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Save re-persists an existing task record.
func (r *repository) Save(ctx context.Context, task *taskModel.Task) (*taskModel.Task, error) {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// List returns all tasks, newest first.
func (r *repository) List(ctx context.Context) ([]taskModel.Task, error) {
	var tasks []taskModel.Task
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []taskModel.Task{}
	}
	return tasks, nil
}

// ListArchived returns all soft-deleted tasks, newest first.
func (r *repository) ListArchived(ctx context.Context) ([]taskModel.Task, error) {
	var tasks []taskModel.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", taskModel.StatusDeleted).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []taskModel.Task{}
	}
	return tasks, nil
}

// Delete physically removes a task and its member snapshot.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&taskModel.TaskMember{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&taskModel.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return taskModel.ErrTaskNotFound
		}
		return nil
	})
}

// GetTeamRef resolves a team's name and current membership from the team
// tables directly; the lifecycle engine only ever reads them.
func (r *repository) GetTeamRef(ctx context.Context, teamID string) (*taskModel.TeamRef, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskModel.ErrTeamNotFound
		}
		return nil, err
	}

	var members []string
	err = r.db.WithContext(ctx).
		Table("team_members").
		Select("user_id").
		Where("team_id = ?", teamID).
		Order("user_id ASC").
		Scan(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []string{}
	}
	return &taskModel.TeamRef{ID: team.ID, Name: team.Name, Members: members}, nil
}
