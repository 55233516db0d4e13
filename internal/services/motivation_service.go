package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/Dexter3110/bole-to-connect/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxMessageLength caps motivational messages, matching the input limit the
// calendar UI enforces.
const MaxMessageLength = 200

var (
	ErrMessageRequired = errors.New("motivational message is required")
	ErrMessageTooLong  = errors.New("motivational message exceeds 200 characters")
	ErrMessageFlagged  = errors.New("message contains blocked language")
)

// MotivationService manages the single time-boxed message a privileged user
// can post for the whole team. A new post supersedes the previous one;
// expiry is checked on every read.
type MotivationService struct {
	db     *gorm.DB
	users  *repository.UserRepository
	filter *ContentFilter
	ttl    time.Duration
}

func NewMotivationService(db *gorm.DB, ttl time.Duration) *MotivationService {
	return &MotivationService{
		db:     db,
		users:  repository.NewUserRepository(db),
		filter: NewContentFilter(BlockedWords),
		ttl:    ttl,
	}
}

func (s *MotivationService) Post(actorID uuid.UUID, message string) (*models.MotivationalMessage, error) {
	if err := s.requirePrivileged(actorID); err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	if s.filter.Flagged(message) {
		return nil, ErrMessageFlagged
	}

	row := models.MotivationalMessage{
		ID:        uuid.New(),
		PostedBy:  actorID,
		Message:   message,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert motivational message: %w", err)
	}
	return &row, nil
}

// Current returns the newest unexpired message, or nil when none is active.
func (s *MotivationService) Current() (*models.MotivationalMessage, error) {
	var row models.MotivationalMessage
	err := s.db.Where("expires_at > ?", time.Now().UTC()).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query motivational message: %w", err)
	}
	return &row, nil
}

// Clear removes any active message ahead of its expiry.
func (s *MotivationService) Clear(actorID uuid.UUID) error {
	if err := s.requirePrivileged(actorID); err != nil {
		return err
	}

	err := s.db.Where("expires_at > ?", time.Now().UTC()).
		Delete(&models.MotivationalMessage{}).Error
	if err != nil {
		return fmt.Errorf("clear motivational message: %w", err)
	}
	return nil
}

func (s *MotivationService) requirePrivileged(actorID uuid.UUID) error {
	role, err := s.users.RoleByID(actorID)
	if err != nil {
		return err
	}
	if !models.IsPrivileged(role) {
		return ErrForbidden
	}
	return nil
}
