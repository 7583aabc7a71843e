package handlers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/careguard/careguard-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeFallEventRepo struct {
	mu     sync.Mutex
	events []*models.FallEvent
}

func (f *fakeFallEventRepo) Create(ctx context.Context, userID uuid.UUID) (*models.FallEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event := &models.FallEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Detected:  true,
		Status:    models.FallStatusPending,
		Timestamp: time.Now(),
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeFallEventRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FallEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.FallEvent{}
	for _, event := range f.events {
		if event.UserID == userID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakeFallEventRepo) UpdateStatus(ctx context.Context, id, requesterID uuid.UUID, status string) (*models.FallEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, event := range f.events {
		if event.ID == id && event.UserID == requesterID {
			event.Status = status
			return event, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeMedicineRepo struct {
	mu        sync.Mutex
	medicines []*models.Medicine
}

func (f *fakeMedicineRepo) Create(ctx context.Context, medicine *models.Medicine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	medicine.ID = uuid.New()
	medicine.CreatedAt = time.Now()
	f.medicines = append(f.medicines, medicine)
	return nil
}

func (f *fakeMedicineRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Medicine{}
	for _, medicine := range f.medicines {
		if medicine.UserID == userID {
			out = append(out, medicine)
		}
	}
	return out, nil
}

func (f *fakeMedicineRepo) SetTaken(ctx context.Context, id, requesterID uuid.UUID, taken bool) (*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, medicine := range f.medicines {
		if medicine.ID == id && medicine.UserID == requesterID {
			medicine.Taken = taken
			return medicine, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeMedicineRepo) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, medicine := range f.medicines {
		if medicine.ID == id && medicine.UserID == requesterID {
			f.medicines = append(f.medicines[:i], f.medicines[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeCaregiverRepo struct {
	mu         sync.Mutex
	caregivers []*models.Caregiver
}

func (f *fakeCaregiverRepo) Create(ctx context.Context, caregiver *models.Caregiver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	caregiver.ID = uuid.New()
	caregiver.CreatedAt = time.Now()
	f.caregivers = append(f.caregivers, caregiver)
	return nil
}

func (f *fakeCaregiverRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Caregiver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Caregiver{}
	for _, caregiver := range f.caregivers {
		if caregiver.UserID == userID {
			out = append(out, caregiver)
		}
	}
	return out, nil
}

func (f *fakeCaregiverRepo) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, caregiver := range f.caregivers {
		if caregiver.ID == id && caregiver.UserID == requesterID {
			f.caregivers = append(f.caregivers[:i], f.caregivers[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeNotifier) SendFallAlert(message string) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type testAPI struct {
	router     *chi.Mux
	auth       *services.AuthService
	notifier   *fakeNotifier
	fallEvents *fakeFallEventRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := zap.NewNop()
	fallEvents := &fakeFallEventRepo{}
	notifier := &fakeNotifier{}

	auth := services.NewAuthService(&fakeUserRepo{}, "test-secret", 7*24*time.Hour)
	coordinator := services.NewCoordinator(&models.DeviceState{}, fallEvents, notifier, logger)
	explain := services.NewExplainService("", "", "", nil, logger)

	router := NewRouter(Deps{
		Auth:        auth,
		Coordinator: coordinator,
		Explain:     explain,
		FallEvents:  fallEvents,
		Medicines:   &fakeMedicineRepo{},
		Caregivers:  &fakeCaregiverRepo{},
		Logger:      logger,
	})

	return &testAPI{
		router:     router,
		auth:       auth,
		notifier:   notifier,
		fallEvents: fallEvents,
	}
}
