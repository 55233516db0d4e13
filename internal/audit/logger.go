// Package audit records before/after snapshots of privileged schedule edits.
package audit

import (
	"encoding/json"
	"fmt"

	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/Dexter3110/bole-to-connect/internal/schedule"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Logger struct {
	db *gorm.DB
}

func NewLogger(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

type changes struct {
	Before schedule.Data `json:"before"`
	After  schedule.Data `json:"after"`
}

// Record appends one schedule_edits row holding both payload snapshots.
// Callers invoke it only after the schedule update has succeeded; the update
// and the audit insert are two independent writes with no shared transaction.
func (l *Logger) Record(scheduleID, editorID uuid.UUID, before, after schedule.Data) error {
	payload, err := json.Marshal(changes{Before: before, After: after})
	if err != nil {
		return fmt.Errorf("marshal edit changes: %w", err)
	}

	edit := models.ScheduleEdit{
		ID:         uuid.New(),
		ScheduleID: scheduleID,
		EditedBy:   editorID,
		Changes:    datatypes.JSON(payload),
	}
	if err := l.db.Create(&edit).Error; err != nil {
		return fmt.Errorf("insert schedule edit: %w", err)
	}
	return nil
}
