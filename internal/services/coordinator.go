package services

import (
	"context"
	"sync"
	"time"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"go.uber.org/zap"
)

// LivenessWindow is how long the device may stay silent before it is
// considered offline. The sensor heartbeats every few seconds.
const LivenessWindow = 10 * time.Second

const fallAlertMessage = "URGENT: A fall has been detected by CareGuard! Please check on the person immediately."

// AlertNotifier fans an urgent message out to the configured contacts.
// Implementations must return without waiting for delivery.
type AlertNotifier interface {
	SendFallAlert(message string)
}

// FallReport is the reconcile snapshot handed back to a polling client.
// FallDetected reflects the flag as it stood before this reconcile
// consumed it.
type FallReport struct {
	FallDetected bool
	Reading      string
}

// Coordinator owns the single DeviceState instance and serializes every
// touch of it. Reconcile keeps the lock across its snapshot, the event
// append and the flag clear, so two concurrent polls can never both
// consume the same pending fall.
type Coordinator struct {
	mu       sync.Mutex
	state    *models.DeviceState
	events   repositories.FallEventRepository
	notifier AlertNotifier
	logger   *zap.Logger

	now func() time.Time
}

func NewCoordinator(state *models.DeviceState, events repositories.FallEventRepository, notifier AlertNotifier, logger *zap.Logger) *Coordinator {
	if state.Reading == "" {
		state.Reading = models.ReadingOffline
	}
	return &Coordinator{
		state:    state,
		events:   events,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordHeartbeat marks the device as seen. The sensor posts one every
// few seconds; this never fails and retries are harmless.
func (c *Coordinator) RecordHeartbeat(reading string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.LastSeenAt = c.now()
	if reading != "" {
		c.state.Reading = reading
	}
}

// RecordFallSignal raises the pending-fall flag and fires the notifier.
// Every call dispatches: a flapping sensor reporting twice sends two
// alerts, which beats missing a real one.
func (c *Coordinator) RecordFallSignal(reading string) {
	c.mu.Lock()
	c.state.LastSeenAt = c.now()
	c.state.PendingFall = true
	if reading != "" {
		c.state.Reading = reading
	}
	c.mu.Unlock()

	c.logger.Warn("fall signal received, dispatching alert", zap.String("reading", reading))
	c.notifier.SendFallAlert(fallAlertMessage)
}

// DeviceOnline reports whether a heartbeat or fall signal arrived within
// the liveness window. Read-only.
func (c *Coordinator) DeviceOnline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online()
}

func (c *Coordinator) online() bool {
	return c.now().Sub(c.state.LastSeenAt) < LivenessWindow
}

// ReconcileAndReport consumes a pending fall, if any, on behalf of the
// polling client. A known user gets a durable FallEvent appended before
// the flag clears; a guest just clears it (there is no user to own the
// row). If the append fails the flag stays raised so the next poll
// retries the write.
func (c *Coordinator) ReconcileAndReport(ctx context.Context, identity *models.Identity) (FallReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.online() {
		// A silent device cannot be trusted to have a real pending
		// fall; drop the flag so it cannot outlive a device crash.
		c.state.Reading = models.ReadingOffline
		c.state.PendingFall = false
	}

	report := FallReport{
		FallDetected: c.state.PendingFall,
		Reading:      c.state.Reading,
	}

	if report.FallDetected && identity != nil {
		event, err := c.events.Create(ctx, identity.UserID)
		if err != nil {
			c.logger.Error("failed to log fall event", zap.Error(err))
			return FallReport{}, err
		}
		c.logger.Info("fall event logged",
			zap.String("event_id", event.ID.String()),
			zap.String("user_id", identity.UserID.String()),
		)
		c.state.PendingFall = false
	}

	if report.FallDetected && identity == nil {
		c.state.PendingFall = false
	}

	return report, nil
}
