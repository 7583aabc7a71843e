package models

import "time"

// DeviceState is the in-memory liveness state of the single sensor device.
// It lives for the lifetime of the process and is never persisted; the
// coordinator owns the one instance and guards it with its own lock.
type DeviceState struct {
	LastSeenAt  time.Time
	Reading     string
	PendingFall bool
}

// ReadingOffline is what the reading is forced to once the device has
// missed the liveness window.
const ReadingOffline = "Offline"
