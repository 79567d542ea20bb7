package domain

import (
	"errors"
	"fmt"
	"strings"
)

// SocketPath is the filesystem path of the unix socket the plugin API is
// served on. The host orchestrator connects here.
type SocketPath string

// NewSocketPath validates the given string and returns it as a SocketPath.
func NewSocketPath(value string) (SocketPath, error) {
	if value == "" {
		return "", errors.New("socket path must be non-empty")
	}
	if !strings.HasPrefix(value, "/") {
		return "", fmt.Errorf("socket path must be absolute: %q", value)
	}
	return SocketPath(value), nil
}
