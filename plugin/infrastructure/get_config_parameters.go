package infrastructure

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
)

const (
	envDevice = "ARDU_DEVICE"
	envBaud   = "ARDU_BAUD"

	defaultDevice     = "/dev/ttyACM0"
	defaultBaud       = 57600
	defaultSocket     = "/tmp/" + ServiceName + ".sock"
	defaultStaleAfter = 30 * time.Second
)

// AppConfig holds all validated configuration parameters for the plugin.
type AppConfig struct {
	DevicePath pluginDomain.DevicePath
	SocketPath pluginDomain.SocketPath
	BaudRate   pluginDomain.BaudRate
	StaleAfter pluginDomain.StaleAfter
	Debug      bool
}

// GetFromCommandLineParameters parses command-line flags and returns validated
// plugin configuration. The device path and baud rate fall back to the
// ARDU_DEVICE and ARDU_BAUD environment variables before their built-in
// defaults, so the plugin can be configured by either mechanism.
func GetFromCommandLineParameters() (*AppConfig, error) {
	deviceDefault := stringFromEnv(envDevice, defaultDevice)
	baudDefault, err := intFromEnv(envBaud, defaultBaud)
	if err != nil {
		return nil, err
	}

	rawDevice := flag.String("device", deviceDefault, "serial port device path")
	rawBaud := flag.Int("baud", baudDefault, "serial port baud rate")
	rawSocket := flag.String("socket", defaultSocket, "unix socket path for the plugin API")
	rawStaleAfter := flag.Duration("stale-after", defaultStaleAfter, "age after which a reading is reported stale")
	rawDebug := flag.Bool("debug", false, "enable debug logging")

	flag.Parse()

	devicePath, err := pluginDomain.NewDevicePath(*rawDevice)
	if err != nil {
		return nil, err
	}

	baudRate, err := pluginDomain.NewBaudRate(*rawBaud)
	if err != nil {
		return nil, err
	}

	socketPath, err := pluginDomain.NewSocketPath(*rawSocket)
	if err != nil {
		return nil, err
	}

	staleAfter, err := pluginDomain.NewStaleAfter(*rawStaleAfter)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DevicePath: devicePath,
		BaudRate:   baudRate,
		SocketPath: socketPath,
		StaleAfter: staleAfter,
		Debug:      *rawDebug,
	}

	return config, nil
}

func stringFromEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}
