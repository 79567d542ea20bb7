package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DevicePath is the filesystem path of the serial character device.
type DevicePath string

// NewDevicePath validates the given string and returns it as a DevicePath.
func NewDevicePath(value string) (DevicePath, error) {
	if value == "" {
		return "", errors.New("device path must be non-empty")
	}
	if !strings.HasPrefix(value, "/") {
		return "", fmt.Errorf("device path must be absolute: %q", value)
	}
	return DevicePath(value), nil
}
