package models

import (
	"time"

	"github.com/google/uuid"
)

type Medicine struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Time      string    `json:"time"`
	Frequency string    `json:"frequency"`
	Taken     bool      `json:"taken"`
	CreatedAt time.Time `json:"created_at"`
}
