package models

import (
	"time"

	"github.com/google/uuid"
)

type FallEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Detected  bool      `json:"detected"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	FallStatusPending    = "pending"
	FallStatusResolved   = "resolved"    // "I am OK"
	FallStatusNotifySent = "notify_sent" // "Send Help"
)

// ValidFallStatusTransition reports whether a status update request is an
// allowed lifecycle transition target. Events are created pending and only
// ever move to one of the two terminal states.
func ValidFallStatusTransition(status string) bool {
	return status == FallStatusResolved || status == FallStatusNotifySent
}
