// Package service provides business logic layer for the notification module.
package service

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/repository"
)

// Service defines the interface for notification business logic operations.
type Service interface {
	// List returns the recent notification feed and the true unread total.
	List(ctx context.Context, userID string) (*model.ListResponse, error)

	// MarkRead marks notifications as read. Mode is selected by the request:
	// by ID (takes precedence), by type, or all unread.
	MarkRead(ctx context.Context, userID string, req *model.MarkReadRequest) error

	// Broadcast delivers one notification per recipient, concurrently and
	// best-effort: individual failures are logged and swallowed. Returns the
	// number of successful deliveries.
	Broadcast(ctx context.Context, recipients []string, tmpl model.Template) int
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new notification service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns the recent notification feed and the true unread total.
func (s *service) List(ctx context.Context, userID string) (*model.ListResponse, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.ListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks notifications as read. ID mode wins when both ID and type are
// given; with neither, every unread notification of the user is marked.
func (s *service) MarkRead(ctx context.Context, userID string, req *model.MarkReadRequest) error {
	switch {
	case req.ID != "":
		return s.repo.MarkReadByID(ctx, userID, req.ID)
	case req.Type != "":
		return s.repo.MarkReadByType(ctx, userID, req.Type)
	default:
		return s.repo.MarkAllRead(ctx, userID)
	}
}

// Broadcast delivers one notification per recipient. Deliveries run
// concurrently and the call waits for all of them to settle; a failed delivery
// never aborts the batch.
func (s *service) Broadcast(ctx context.Context, recipients []string, tmpl model.Template) int {
	if len(recipients) == 0 {
		return 0
	}

	var succeeded atomic.Int64
	var wg sync.WaitGroup

	for _, recipient := range recipients {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()

			n := &model.Notification{
				UserID:  userID,
				Type:    tmpl.Type,
				Title:   tmpl.Title,
				Message: tmpl.Message,
				Data:    tmpl.Data,
			}
			if _, err := s.repo.Create(ctx, n); err != nil {
				s.logger.Warnw("notification delivery failed",
					"recipient", userID,
					"type", tmpl.Type,
					"error", err,
				)
				return
			}
			succeeded.Add(1)
		}(recipient)
	}

	wg.Wait()
	return int(succeeded.Load())
}
