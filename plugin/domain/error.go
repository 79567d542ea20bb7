package domain

import "errors"

// ErrNotFound indicates that a sensor id has never been observed on the wire.
// A lookup miss is an expected outcome, not a failure.
var ErrNotFound = errors.New("sensor not found")
