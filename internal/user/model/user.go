package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                                       json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                      json:"name"`
	Title     string    `gorm:"column:title;type:varchar(255);not null;default:''"                          json:"title"`
	Role      string    `gorm:"column:role;type:varchar(255);not null"                                      json:"role"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"                         json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"                                  json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;type:boolean;not null;default:false"                         json:"is_admin"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true;index:idx_users_is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                   json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                   json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
