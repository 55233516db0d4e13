package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dexter3110/bole-to-connect/internal/audit"
	"github.com/Dexter3110/bole-to-connect/internal/dto"
	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/Dexter3110/bole-to-connect/internal/repository"
	"github.com/Dexter3110/bole-to-connect/internal/schedule"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields    = errors.New("user_id, month, and schedule_data are required")
	ErrForbidden        = errors.New("unauthorized access")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleService orchestrates submissions, reads, the boss-wide view, and
// privileged edits. Identity always arrives as an explicit acting user id;
// there is no ambient session state.
type ScheduleService struct {
	schedules *repository.ScheduleRepository
	users     *repository.UserRepository
	auditLog  *audit.Logger
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		schedules: repository.NewScheduleRepository(db),
		users:     repository.NewUserRepository(db),
		auditLog:  audit.NewLogger(db),
	}
}

// GetRole returns the stored role for a user, defaulting to employee when
// the user does not exist.
func (s *ScheduleService) GetRole(userID uuid.UUID) (string, error) {
	return s.users.RoleByID(userID)
}

// Submit normalizes the raw payload and appends a new submitted schedule
// row. Earlier submissions for the same user and month are kept; reads
// resolve the newest one.
func (s *ScheduleService) Submit(userID uuid.UUID, month string, rawData json.RawMessage) (*dto.ScheduleResponse, error) {
	if userID == uuid.Nil || month == "" || isAbsentJSON(rawData) {
		return nil, ErrMissingFields
	}

	data := schedule.Normalize(rawData)
	row, err := s.schedules.InsertSubmission(userID, month, data, true)
	if err != nil {
		return nil, err
	}
	return scheduleResponse(row, data), nil
}

// FetchForUser returns the user's latest schedule, filtered by month when
// one is given. When nothing has been submitted it returns a renderable
// placeholder rather than a not-found failure.
func (s *ScheduleService) FetchForUser(userID uuid.UUID, month string) (*dto.ScheduleResponse, error) {
	var (
		row *models.Schedule
		err error
	)
	if month != "" {
		row, err = s.schedules.LatestForUserAndMonth(userID, month)
	} else {
		row, err = s.schedules.LatestForUser(userID)
	}
	if err != nil {
		return nil, err
	}

	if row == nil {
		return &dto.ScheduleResponse{
			UserID:       userID,
			Month:        month,
			ScheduleData: schedule.Empty(),
			IsSubmitted:  false,
		}, nil
	}

	// Legacy rows may hold non-canonical shapes; repair on the way out.
	return scheduleResponse(row, schedule.Normalize(row.ScheduleData)), nil
}

// FetchAllForBoss returns every employee's full submission history, newest
// first. The acting user must hold a privileged role; the check runs before
// any schedule row is read.
func (s *ScheduleService) FetchAllForBoss(actorID uuid.UUID) ([]dto.EmployeeScheduleResponse, error) {
	if err := s.requirePrivileged(actorID); err != nil {
		return nil, err
	}

	rows, err := s.schedules.AllForRole(models.RoleEmployee)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmployeeScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EmployeeScheduleResponse{
			ID:           r.ID,
			UserID:       r.UserID,
			Month:        r.Month,
			ScheduleData: schedule.Normalize(r.ScheduleData),
			IsSubmitted:  r.IsSubmitted,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
			Name:         r.Name,
			Email:        r.Email,
		})
	}
	return out, nil
}

// Edit overwrites an existing schedule's payload and appends one audit row
// holding the normalized before/after snapshots. The update and the audit
// insert are separate writes; a concurrent edit between the read and the
// write can leave a stale before snapshot, which is accepted behavior.
func (s *ScheduleService) Edit(scheduleID, actorID uuid.UUID, rawData json.RawMessage) error {
	if err := s.requirePrivileged(actorID); err != nil {
		return err
	}

	row, err := s.schedules.FindByID(scheduleID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrScheduleNotFound
	}
	if err != nil {
		return err
	}

	before := schedule.Normalize(row.ScheduleData)
	after := schedule.Normalize(rawData)

	if err := s.schedules.UpdateInPlace(scheduleID, after); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}

	if err := s.auditLog.Record(scheduleID, actorID, before, after); err != nil {
		return fmt.Errorf("record schedule edit: %w", err)
	}

	slog.Info("schedule edited", "schedule_id", scheduleID, "edited_by", actorID)
	return nil
}

func (s *ScheduleService) requirePrivileged(actorID uuid.UUID) error {
	role, err := s.users.RoleByID(actorID)
	if err != nil {
		return err
	}
	if !models.IsPrivileged(role) {
		return ErrForbidden
	}
	return nil
}

func scheduleResponse(row *models.Schedule, data schedule.Data) *dto.ScheduleResponse {
	id := row.ID
	created := row.CreatedAt
	updated := row.UpdatedAt
	return &dto.ScheduleResponse{
		ID:           &id,
		UserID:       row.UserID,
		Month:        row.Month,
		ScheduleData: data,
		IsSubmitted:  row.IsSubmitted,
		CreatedAt:    &created,
		UpdatedAt:    &updated,
	}
}

// isAbsentJSON treats a missing field and an explicit null the same way.
func isAbsentJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
