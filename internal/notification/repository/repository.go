// Package repository provides data access layer for the notification module.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "github.com/BaltasisKos/Task-Manager-Server/internal/notification/model"
)

// feedLimit is the number of notifications returned per list call.
const feedLimit = 20

// Repository defines the interface for notification data access operations.
type Repository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, n *notificationModel.Notification) (*notificationModel.Notification, error)

	// ListByUser returns the most recent notifications for a user.
	ListByUser(ctx context.Context, userID string) ([]notificationModel.Notification, error)

	// CountUnread returns the total number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int64, error)

	// MarkReadByID marks one notification as read if it belongs to the user.
	MarkReadByID(ctx context.Context, userID, id string) error

	// MarkReadByType marks all unread notifications of a type as read for a user.
	MarkReadByType(ctx context.Context, userID, notificationType string) error

	// MarkAllRead marks all unread notifications as read for a user.
	MarkAllRead(ctx context.Context, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new notification repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new notification record.
func (r *repository) Create(ctx context.Context, n *notificationModel.Notification) (*notificationModel.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.Data == nil {
		n.Data = notificationModel.Payload{}
	}

	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// ListByUser returns the most recent notifications for a user, newest first.
func (r *repository) ListByUser(ctx context.Context, userID string) ([]notificationModel.Notification, error) {
	var notifications []notificationModel.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(feedLimit).
		Find(&notifications).Error

	if err != nil {
		return nil, err
	}

	if notifications == nil {
		notifications = []notificationModel.Notification{}
	}
	return notifications, nil
}

// CountUnread returns the total number of unread notifications for a user.
func (r *repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkReadByID marks one notification as read if it belongs to the user.
func (r *repository) MarkReadByID(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notificationModel.ErrNotificationNotFound
	}
	return nil
}

// MarkReadByType marks all unread notifications of a type as read for a user.
func (r *repository) MarkReadByType(ctx context.Context, userID, notificationType string) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND type = ? AND is_read = ?", userID, notificationType, false).
		Update("is_read", true).Error
}

// MarkAllRead marks all unread notifications as read for a user.
func (r *repository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
