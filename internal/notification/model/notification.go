package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Notification type values.
const (
	TypeTaskCreated   = "task_created"
	TypeTaskAssigned  = "task_assigned"
	TypeTaskCompleted = "task_completed"
	TypeTaskUpdated   = "task_updated"
	TypeUserMentioned = "user_mentioned"
)

// Payload is the free-form structured data carried by a notification,
// stored as JSONB.
type Payload map[string]interface{}

// Value implements driver.Valuer for database serialization.
func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database deserialization.
func (p *Payload) Scan(value interface{}) error {
	if value == nil {
		*p = Payload{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported payload column type")
	}
	return json.Unmarshal(b, p)
}

// Notification represents a per-user notification record. Records are
// append-only; only the IsRead flag mutates after creation.
// Matches the notifications table schema.
type Notification struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                                                                json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index:idx_notifications_user_read_created,priority:1"        json:"user_id"`
	Type      string    `gorm:"column:type;type:notification_type_enum;not null"                                                     json:"type"`
	Title     string    `gorm:"column:title;type:varchar(255);not null"                                                              json:"title"`
	Message   string    `gorm:"column:message;type:text;not null"                                                                    json:"message"`
	Data      Payload   `gorm:"column:data;type:jsonb;not null"                                                                      json:"data"`
	IsRead    bool      `gorm:"column:is_read;type:boolean;not null;default:false;index:idx_notifications_user_read_created,priority:2" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now();index:idx_notifications_user_read_created,priority:3" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}
