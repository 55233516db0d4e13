package dto

import (
	"encoding/json"
	"time"

	"github.com/Dexter3110/bole-to-connect/internal/schedule"
	"github.com/google/uuid"
)

type SubmitScheduleRequest struct {
	UserID       uuid.UUID       `json:"user_id"`
	Month        string          `json:"month"`
	ScheduleData json.RawMessage `json:"schedule_data"`
}

type EditScheduleRequest struct {
	BossID       uuid.UUID       `json:"boss_id"`
	ScheduleData json.RawMessage `json:"schedule_data"`
}

// ScheduleResponse is a schedule as served to clients. ID and timestamps are
// nil on the placeholder returned when a user has no submission yet.
type ScheduleResponse struct {
	ID           *uuid.UUID    `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Month        string        `json:"month"`
	ScheduleData schedule.Data `json:"schedule_data"`
	IsSubmitted  bool          `json:"is_submitted"`
	CreatedAt    *time.Time    `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
}

// EmployeeScheduleResponse is one row of the boss-wide view: a schedule plus
// its submitter's identity.
type EmployeeScheduleResponse struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Month        string        `json:"month"`
	ScheduleData schedule.Data `json:"schedule_data"`
	IsSubmitted  bool          `json:"is_submitted"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type SubmitScheduleResponse struct {
	Message  string           `json:"message"`
	Schedule ScheduleResponse `json:"schedule"`
}

type FetchScheduleResponse struct {
	Schedule ScheduleResponse `json:"schedule"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
