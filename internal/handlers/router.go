package handlers

import (
	"net/http"

	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/careguard/careguard-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Auth        *services.AuthService
	Coordinator *services.Coordinator
	Explain     *services.ExplainService
	FallEvents  repositories.FallEventRepository
	Medicines   repositories.MedicineRepository
	Caregivers  repositories.CaregiverRepository
	Logger      *zap.Logger
}

func NewRouter(deps Deps) *chi.Mux {
	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	deviceHandler := NewDeviceHandler(deps.Coordinator, deps.Logger)
	fallEventHandler := NewFallEventHandler(deps.FallEvents, deps.Logger)
	medicineHandler := NewMedicineHandler(deps.Medicines, deps.Explain, deps.Logger)
	caregiverHandler := NewCaregiverHandler(deps.Caregivers, deps.Logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "CareGuard API is running!"})
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Direct sensor webhooks, no credential required
		r.Post("/device/heartbeat", deviceHandler.Heartbeat)
		r.Post("/device/alert", deviceHandler.Alert)

		// Everything below resolves an identity (or guest) first
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.Auth))

			r.Get("/device-status", deviceHandler.DeviceStatus)
			r.Get("/fall-status", deviceHandler.FallStatus)

			r.Route("/fall-events", func(r chi.Router) {
				r.Get("/", fallEventHandler.List)
				r.Post("/", fallEventHandler.Create)
				r.Put("/{id}", fallEventHandler.UpdateStatus)
			})

			r.Route("/medicines", func(r chi.Router) {
				r.Get("/", medicineHandler.List)
				r.Post("/", medicineHandler.Create)
				r.Put("/{id}", medicineHandler.Update)
				r.Delete("/{id}", medicineHandler.Delete)
				r.Post("/explain", medicineHandler.Explain)
			})

			r.Route("/caregivers", func(r chi.Router) {
				r.Get("/", caregiverHandler.List)
				r.Post("/", caregiverHandler.Create)
				r.Delete("/{id}", caregiverHandler.Delete)
			})
		})
	})

	return router
}
