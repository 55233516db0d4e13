// Package repository holds the row-level persistence operations. Each method
// is a single-row (or single-query) operation; nothing here opens a
// transaction spanning multiple writes.
package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/Dexter3110/bole-to-connect/internal/schedule"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a row referenced by id does not exist.
var ErrNotFound = errors.New("record not found")

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// EmployeeScheduleRow is a schedule joined with its submitter's identity,
// as served to the all-employees view.
type EmployeeScheduleRow struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Month        string         `json:"month"`
	ScheduleData datatypes.JSON `json:"schedule_data"`
	IsSubmitted  bool           `json:"is_submitted"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
}

// InsertSubmission appends a new schedule row. Submissions never upsert:
// history is kept and reads resolve "latest wins" by created_at.
func (r *ScheduleRepository) InsertSubmission(userID uuid.UUID, month string, data schedule.Data, submitted bool) (*models.Schedule, error) {
	payload, err := data.MarshalBytes()
	if err != nil {
		return nil, fmt.Errorf("marshal schedule data: %w", err)
	}

	row := models.Schedule{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		ScheduleData: datatypes.JSON(payload),
		IsSubmitted:  submitted,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	return &row, nil
}

// LatestForUserAndMonth returns the newest row matching both keys, or nil
// when the user has never submitted for that month.
func (r *ScheduleRepository) LatestForUserAndMonth(userID uuid.UUID, month string) (*models.Schedule, error) {
	var row models.Schedule
	err := r.db.Where("user_id = ? AND month = ?", userID, month).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return &row, nil
}

// LatestForUser returns the user's newest row across all months, or nil.
func (r *ScheduleRepository) LatestForUser(userID uuid.UUID) (*models.Schedule, error) {
	var row models.Schedule
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return &row, nil
}

// FindByID returns the schedule row with the given id, or ErrNotFound.
func (r *ScheduleRepository) FindByID(id uuid.UUID) (*models.Schedule, error) {
	var row models.Schedule
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return &row, nil
}

// AllForRole returns every schedule row belonging to users of the given
// role, newest first, joined with submitter name and email. The full
// submission history is returned intentionally; callers wanting only the
// latest row per user must post-filter.
func (r *ScheduleRepository) AllForRole(role string) ([]EmployeeScheduleRow, error) {
	var rows []EmployeeScheduleRow
	err := r.db.Table("schedules").
		Select("schedules.id, schedules.user_id, schedules.month, schedules.schedule_data, schedules.is_submitted, schedules.created_at, schedules.updated_at, users.name, users.email").
		Joins("JOIN users ON users.id = schedules.user_id").
		Where("users.role = ? AND users.deleted_at IS NULL", role).
		Order("schedules.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query employee schedules: %w", err)
	}
	return rows, nil
}

// UpdateInPlace overwrites the payload of an existing row and refreshes its
// updated_at. ErrNotFound when the id does not exist.
func (r *ScheduleRepository) UpdateInPlace(id uuid.UUID, data schedule.Data) error {
	payload, err := data.MarshalBytes()
	if err != nil {
		return fmt.Errorf("marshal schedule data: %w", err)
	}

	res := r.db.Model(&models.Schedule{}).
		Where("id = ?", id).
		Update("schedule_data", datatypes.JSON(payload))
	if res.Error != nil {
		return fmt.Errorf("update schedule: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
