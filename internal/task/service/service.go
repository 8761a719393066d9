// Package service provides the task lifecycle engine: creation, status
// transitions, soft delete/restore, and the notification fan-out they trigger.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationModel "github.com/BaltasisKos/Task-Manager-Server/internal/notification/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/repository"
)

// Notifier is the best-effort broadcast consumed by the lifecycle engine.
// Implemented by the notification service.
type Notifier interface {
	Broadcast(ctx context.Context, recipients []string, tmpl notificationModel.Template) int
}

// Service defines the interface for task lifecycle operations.
type Service interface {
	// Create creates a task with a member snapshot from its team and notifies
	// every member except the actor.
	Create(ctx context.Context, actorID string, req *model.CreateTaskRequest) (*model.TaskResponse, error)

	// Update applies a patch to a task. A status change notifies every member
	// of the task except the actor.
	Update(ctx context.Context, actorID, id string, req *model.UpdateTaskRequest) (*model.TaskResponse, error)

	// Get returns one task with its member snapshot.
	Get(ctx context.Context, id string) (*model.TaskResponse, error)

	// List returns all tasks.
	List(ctx context.Context) ([]model.TaskResponse, error)

	// ListArchived returns all soft-deleted tasks.
	ListArchived(ctx context.Context) ([]model.TaskResponse, error)

	// SoftDelete marks a task deleted without removing it.
	SoftDelete(ctx context.Context, id string) (*model.TaskResponse, error)

	// Restore returns a soft-deleted task to the todo state.
	Restore(ctx context.Context, id string) (*model.TaskResponse, error)

	// HardDelete permanently removes a task.
	HardDelete(ctx context.Context, id string) error
}

type service struct {
	repo     repository.Repository
	notifier Notifier
	logger   *zap.SugaredLogger
}

// New creates a new task service instance.
func New(repo repository.Repository, notifier Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Create creates a task with a member snapshot from its team. The snapshot is
// taken once: later team membership changes never alter the task's members.
func (s *service) Create(ctx context.Context, actorID string, req *model.CreateTaskRequest) (*model.TaskResponse, error) {
	if req.Name == "" {
		return nil, model.ErrTaskNameRequired
	}
	if _, err := uuid.Parse(req.TeamID); err != nil {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetTeamRef(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Name:    req.Name,
		TeamID:  team.ID,
		Status:  model.StatusTodo,
		Notes:   req.Notes,
		DueDate: req.DueDate,
	}

	created, err := s.repo.Create(ctx, task, team.Members)
	if err != nil {
		return nil, err
	}

	// Notifications are a best-effort side channel: they run after the task
	// write is durable and their failures stay out of the result.
	recipients := excludeActor(team.Members, actorID)
	delivered := s.notifier.Broadcast(ctx, recipients, notificationModel.Template{
		Type:    notificationModel.TypeTaskCreated,
		Title:   "New task assigned",
		Message: fmt.Sprintf("Task %q was created in team %s", created.Name, team.Name),
		Data: notificationModel.Payload{
			"taskId":    created.ID,
			"taskName":  created.Name,
			"teamId":    team.ID,
			"teamName":  team.Name,
			"createdBy": actorID,
		},
	})

	s.logger.Infow("task created",
		"task_id", created.ID,
		"team_id", team.ID,
		"member_count", len(team.Members),
		"notified", delivered,
	)

	return model.NewTaskResponse(created, team.Members), nil
}

// Update applies a patch to a task, last write wins per field. When the patch
// carries a status different from the stored one, every member of the task
// except the actor gets a task_updated notification after the write lands.
func (s *service) Update(ctx context.Context, actorID, id string, req *model.UpdateTaskRequest) (*model.TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTaskID
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := task.Status

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return nil, model.ErrInvalidStatus
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	updated, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != oldStatus {
		recipients := excludeActor(members, actorID)
		delivered := s.notifier.Broadcast(ctx, recipients, notificationModel.Template{
			Type:    notificationModel.TypeTaskUpdated,
			Title:   "Task status changed",
			Message: fmt.Sprintf("Task %q moved from %s to %s", updated.Name, oldStatus, updated.Status),
			Data: notificationModel.Payload{
				"taskId":    updated.ID,
				"taskName":  updated.Name,
				"oldStatus": oldStatus,
				"newStatus": updated.Status,
				"updatedBy": actorID,
			},
		})
		s.logger.Infow("task status changed",
			"task_id", id,
			"old_status", oldStatus,
			"new_status", updated.Status,
			"notified", delivered,
		)
	}

	return model.NewTaskResponse(updated, members), nil
}

// Get returns one task with its member snapshot.
func (s *service) Get(ctx context.Context, id string) (*model.TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTaskID
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewTaskResponse(task, members), nil
}

// List returns all tasks.
func (s *service) List(ctx context.Context) ([]model.TaskResponse, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, tasks)
}

// ListArchived returns all soft-deleted tasks.
func (s *service) ListArchived(ctx context.Context) ([]model.TaskResponse, error) {
	tasks, err := s.repo.ListArchived(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, tasks)
}

func (s *service) withMembers(ctx context.Context, tasks []model.Task) ([]model.TaskResponse, error) {
	resp := make([]model.TaskResponse, 0, len(tasks))
	for i := range tasks {
		members, err := s.repo.GetMemberIDs(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *model.NewTaskResponse(&tasks[i], members))
	}
	return resp, nil
}

// SoftDelete marks a task deleted in place. Calling it on an already deleted
// task is a no-op that succeeds. No notification is dispatched.
func (s *service) SoftDelete(ctx context.Context, id string) (*model.TaskResponse, error) {
	return s.setStatus(ctx, id, model.StatusDeleted)
}

// Restore sets a task back to todo unconditionally; the status held before
// deletion is not recalled.
func (s *service) Restore(ctx context.Context, id string) (*model.TaskResponse, error) {
	return s.setStatus(ctx, id, model.StatusTodo)
}

func (s *service) setStatus(ctx context.Context, id, status string) (*model.TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidTaskID
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	saved, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewTaskResponse(saved, members), nil
}

// HardDelete permanently removes a task. No notification is dispatched.
func (s *service) HardDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrInvalidTaskID
	}
	return s.repo.Delete(ctx, id)
}

// excludeActor filters the actor out of a recipient list.
func excludeActor(members []string, actorID string) []string {
	recipients := make([]string, 0, len(members))
	for _, m := range members {
		if m != actorID {
			recipients = append(recipients, m)
		}
	}
	return recipients
}
