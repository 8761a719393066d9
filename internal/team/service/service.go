// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/team/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a new team with an optional member set.
	Create(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamResponse, error)

	// Get returns a team with its members.
	Get(ctx context.Context, id string) (*model.TeamResponse, error)

	// List returns all non-deleted teams with members.
	List(ctx context.Context) ([]model.TeamResponse, error)

	// ListArchived returns all archived teams with members.
	ListArchived(ctx context.Context) ([]model.TeamResponse, error)

	// Update replaces name/description/members of a team.
	Update(ctx context.Context, id string, req *model.UpdateTeamRequest) (*model.TeamResponse, error)

	// Archive marks a team archived.
	Archive(ctx context.Context, id string) (*model.TeamResponse, error)

	// Restore returns an archived team to the active state.
	Restore(ctx context.Context, id string) (*model.TeamResponse, error)

	// Delete permanently removes a team.
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Create creates a new team with an optional member set.
func (s *service) Create(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamResponse, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidTeamName
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.StatusActive,
		Deleted:     false,
	}

	created, err := s.repo.Create(ctx, team, req.Members)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", created.ID, "member_count", len(members))
	return model.NewTeamResponse(created, members), nil
}

// Get returns a team with its members.
func (s *service) Get(ctx context.Context, id string) (*model.TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewTeamResponse(team, members), nil
}

// List returns all non-deleted teams with members.
func (s *service) List(ctx context.Context) ([]model.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, teams)
}

// ListArchived returns all archived teams with members.
func (s *service) ListArchived(ctx context.Context) ([]model.TeamResponse, error) {
	teams, err := s.repo.ListArchived(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, teams)
}

func (s *service) withMembers(ctx context.Context, teams []model.Team) ([]model.TeamResponse, error) {
	resp := make([]model.TeamResponse, 0, len(teams))
	for i := range teams {
		members, err := s.repo.GetMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *model.NewTeamResponse(&teams[i], members))
	}
	return resp, nil
}

// Update replaces name/description/members of a team. Empty fields keep their
// current value.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateTeamRequest) (*model.TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Description != "" {
		team.Description = req.Description
	}

	updated, err := s.repo.Update(ctx, team, req.Members)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewTeamResponse(updated, members), nil
}

// Archive marks a team archived.
func (s *service) Archive(ctx context.Context, id string) (*model.TeamResponse, error) {
	return s.setArchived(ctx, id, true)
}

// Restore returns an archived team to the active state.
func (s *service) Restore(ctx context.Context, id string) (*model.TeamResponse, error) {
	return s.setArchived(ctx, id, false)
}

func (s *service) setArchived(ctx context.Context, id string, archived bool) (*model.TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.SetArchived(archived)
	saved, err := s.repo.Save(ctx, team)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team archive state changed", "team_id", id, "archived", archived)
	return model.NewTeamResponse(saved, members), nil
}

// Delete permanently removes a team.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrInvalidTeamID
	}
	return s.repo.Delete(ctx, id)
}
