package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values stored on users.role.
const (
	RoleEmployee = "employee"
	RoleBoss     = "boss"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// IsPrivileged reports whether a role may run cross-user operations:
// browsing every employee's schedule, editing submitted schedules, and
// posting motivational messages.
func IsPrivileged(role string) bool {
	switch role {
	case RoleBoss, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;default:'employee'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
