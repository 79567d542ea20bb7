// Package domain provides the core model for serial temperature telemetry:
// the line protocol parser and the shared sensor state.
package domain

import "time"

// SensorID identifies one sensor reported by the device.
type SensorID string

// Reading is one timestamped temperature value for a named sensor.
// It is immutable once constructed.
type Reading struct {
	ObservedAt        time.Time
	SensorID          SensorID
	ValueMillidegrees int64
}
