// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/BaltasisKos/Task-Manager-Server/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team with its membership set.
	Create(ctx context.Context, team *teamModel.Team, memberIDs []string) (*teamModel.Team, error)

	// GetByID finds a team by ID.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetMembers returns member projections for a team.
	GetMembers(ctx context.Context, teamID string) ([]teamModel.MemberInfo, error)

	// List returns all non-deleted teams.
	List(ctx context.Context) ([]teamModel.Team, error)

	// ListArchived returns all archived teams.
	ListArchived(ctx context.Context) ([]teamModel.Team, error)

	// Update re-persists a team and optionally replaces its membership set.
	Update(ctx context.Context, team *teamModel.Team, memberIDs *[]string) (*teamModel.Team, error)

	// Save re-persists a team record without touching membership.
	Save(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// Delete physically removes a team and its membership rows.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new team with its membership set.
func (r *repository) Create(ctx context.Context, team *teamModel.Team, memberIDs []string) (*teamModel.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return replaceMembers(tx, team.ID, memberIDs)
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// replaceMembers rewrites the membership rows for a team.
func replaceMembers(tx *gorm.DB, teamID string, memberIDs []string) error {
	if err := tx.Where("team_id = ?", teamID).Delete(&teamModel.TeamMember{}).Error; err != nil {
		return err
	}
	seen := make(map[string]bool, len(memberIDs))
	for _, userID := range memberIDs {
		if userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true
		if err := tx.Create(&teamModel.TeamMember{TeamID: teamID, UserID: userID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID finds a team by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetMembers returns member projections for a team.
func (r *repository) GetMembers(ctx context.Context, teamID string) ([]teamModel.MemberInfo, error) {
	var members []teamModel.MemberInfo

	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.user_id, users.name, users.email").
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("users.name ASC").
		Scan(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []teamModel.MemberInfo{}
	}
	return members, nil
}

// List returns all non-deleted teams.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Find(&teams).Error

	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// ListArchived returns all archived teams. Both flags are checked, matching
// how list queries consume them.
func (r *repository) ListArchived(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("deleted = ? AND status = ?", true, teamModel.StatusArchived).
		Order("created_at DESC").
		Find(&teams).Error

	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// Update re-persists a team and optionally replaces its membership set.
func (r *repository) Update(ctx context.Context, team *teamModel.Team, memberIDs *[]string) (*teamModel.Team, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(team).Error; err != nil {
			return err
		}
		if memberIDs != nil {
			return replaceMembers(tx, team.ID, *memberIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// Save re-persists a team record without touching membership.
func (r *repository) Save(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	if err := r.db.WithContext(ctx).Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// Delete physically removes a team and its membership rows.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&teamModel.TeamMember{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&teamModel.Team{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return teamModel.ErrTeamNotFound
		}
		return nil
	})
}
