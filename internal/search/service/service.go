// Package service provides business logic for cross-entity search.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/search/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/search/repository"
)

// minQueryLength is the minimum trimmed query length.
const minQueryLength = 2

// Service defines the interface for search operations.
type Service interface {
	// Search runs both collection queries and merges the results. The
	// operation is atomic in failure: either leg failing fails the whole call.
	Search(ctx context.Context, query string) (*model.Response, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new search service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Search runs the task and user queries concurrently and merges the results.
// Queries under the minimum length never reach the store.
func (s *service) Search(ctx context.Context, query string) (*model.Response, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLength {
		return nil, model.ErrQueryTooShort
	}

	var (
		tasks   []model.TaskResult
		users   []model.UserResult
		taskErr error
		userErr error
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		tasks, taskErr = s.repo.SearchTasks(ctx, trimmed)
	}()
	users, userErr = s.repo.SearchUsers(ctx, trimmed)
	<-done

	if taskErr != nil {
		s.logger.Errorw("task search failed", "query", trimmed, "error", taskErr)
		return nil, fmt.Errorf("search failed: %w", taskErr)
	}
	if userErr != nil {
		s.logger.Errorw("user search failed", "query", trimmed, "error", userErr)
		return nil, fmt.Errorf("search failed: %w", userErr)
	}

	return &model.Response{Tasks: tasks, Users: users}, nil
}
