package repositories

import (
	"context"
	"time"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type FallEventRepository interface {
	Create(ctx context.Context, userID uuid.UUID) (*models.FallEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FallEvent, error)
	UpdateStatus(ctx context.Context, id, requesterID uuid.UUID, status string) (*models.FallEvent, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, medicine *models.Medicine) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Medicine, error)
	SetTaken(ctx context.Context, id, requesterID uuid.UUID, taken bool) (*models.Medicine, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type CaregiverRepository interface {
	Create(ctx context.Context, caregiver *models.Caregiver) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Caregiver, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type ExplanationCache interface {
	Get(ctx context.Context, medicineName string) (string, error)
	Set(ctx context.Context, medicineName, explanation string, ttl time.Duration) error
}
