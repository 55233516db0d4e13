package models

import (
	"time"

	"github.com/google/uuid"
)

// MotivationalMessage is a boss-posted message shown to all users until it
// expires. Posting a new one supersedes the previous; expiry is evaluated
// at read time, never by a background job.
type MotivationalMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostedBy  uuid.UUID `gorm:"type:uuid;not null" json:"posted_by"`
	Message   string    `gorm:"size:200;not null" json:"message"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
