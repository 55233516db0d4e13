package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostMotivationRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
}

// MotivationResponse carries the active message. Message is null once the
// 24-hour window has elapsed or after a clear.
type MotivationResponse struct {
	Message   *string    `json:"message"`
	PostedBy  *uuid.UUID `json:"posted_by,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
