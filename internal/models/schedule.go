package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Schedule is one submitted month for one user. Submissions always insert a
// new row; the authoritative schedule for a (user, month) pair is the row
// with the greatest created_at. Rows are never deleted, and only a
// privileged edit mutates one in place.
type Schedule struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_schedules_user_month" json:"user_id"`
	Month        string         `gorm:"size:20;not null;index:idx_schedules_user_month" json:"month"`
	ScheduleData datatypes.JSON `gorm:"type:jsonb;not null" json:"schedule_data"`
	IsSubmitted  bool           `gorm:"default:false" json:"is_submitted"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ScheduleEdit is the append-only audit trail for privileged edits. Changes
// holds {"before": ..., "after": ...} snapshots of the schedule payload.
type ScheduleEdit struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID uuid.UUID      `gorm:"type:uuid;not null;index" json:"schedule_id"`
	EditedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"edited_by"`
	Changes    datatypes.JSON `gorm:"type:jsonb;not null" json:"changes"`
	CreatedAt  time.Time      `json:"created_at"`
}
