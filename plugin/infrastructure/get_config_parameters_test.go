package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringFromEnv(t *testing.T) {
	t.Setenv(envDevice, "/dev/ttyUSB3")
	require.Equal(t, "/dev/ttyUSB3", stringFromEnv(envDevice, defaultDevice))

	t.Setenv(envDevice, "")
	require.Equal(t, defaultDevice, stringFromEnv(envDevice, defaultDevice))
}

func TestIntFromEnv(t *testing.T) {
	t.Setenv(envBaud, "115200")
	value, err := intFromEnv(envBaud, defaultBaud)
	require.NoError(t, err)
	require.Equal(t, 115200, value)

	t.Setenv(envBaud, "")
	value, err = intFromEnv(envBaud, defaultBaud)
	require.NoError(t, err)
	require.Equal(t, defaultBaud, value)

	t.Setenv(envBaud, "not-a-number")
	_, err = intFromEnv(envBaud, defaultBaud)
	require.Error(t, err)
}
