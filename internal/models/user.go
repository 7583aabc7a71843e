package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleElderly   = "elderly"
	RoleCaregiver = "caregiver"
)

// Identity is what the auth middleware resolves a bearer token into.
// A nil *Identity means the request is running as guest.
type Identity struct {
	UserID uuid.UUID `json:"id"`
	Role   string    `json:"role"`
}
