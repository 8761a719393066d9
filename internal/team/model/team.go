package model

import (
	"time"

	"gorm.io/gorm"
)

// Team status values.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"                                      json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"                                     json:"name"`
	Description string    `gorm:"column:description;type:text;not null;default:''"                           json:"description"`
	Status      string    `gorm:"column:status;type:team_status_enum;not null;default:'active'"              json:"status"`
	Deleted     bool      `gorm:"column:deleted;type:boolean;not null;default:false;index:idx_teams_deleted" json:"deleted"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                  json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                  json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// SetArchived toggles the archived state. Status and the deleted flag always
// move together; this is the only place either of them is written.
func (t *Team) SetArchived(archived bool) {
	if archived {
		t.Status = StatusArchived
		t.Deleted = true
	} else {
		t.Status = StatusActive
		t.Deleted = false
	}
}

// TeamMember represents a team membership row.
// Matches the team_members table schema.
type TeamMember struct {
	ID     int64  `gorm:"primaryKey;column:id;type:bigserial"                                       json:"id"`
	TeamID string `gorm:"column:team_id;type:varchar(36);not null;index:idx_team_members_team_id"   json:"team_id"`
	UserID string `gorm:"column:user_id;type:varchar(36);not null"                                  json:"user_id"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
