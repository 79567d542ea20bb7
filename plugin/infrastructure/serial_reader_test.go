package infrastructure

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"

	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
)

// fakePort feeds scripted chunks to the reader. Closing the data channel
// simulates device loss; Close unblocks a pending Read like a real handle.
type fakePort struct {
	data      chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakePort() *fakePort {
	return &fakePort{
		data:   make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (p *fakePort) Read(b []byte) (int, error) {
	select {
	case <-p.closed:
		return 0, errors.New("port closed")
	case chunk, ok := <-p.data:
		if !ok {
			return 0, io.EOF
		}
		return copy(b, chunk), nil
	}
}

func (p *fakePort) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}

func (p *fakePort) send(s string) {
	p.data <- []byte(s)
}

func (p *fakePort) disconnect() {
	close(p.data)
}

// stubOpenPort replaces the device opener for the duration of one test.
func stubOpenPort(t *testing.T, open func(path string, mode *serial.Mode) (serialPort, error)) {
	t.Helper()
	original := openPort
	openPort = open
	t.Cleanup(func() { openPort = original })
}

func newTestReader(t *testing.T) (*SerialLineReader, *pluginDomain.SensorStore) {
	t.Helper()
	devicePath, err := pluginDomain.NewDevicePath("/dev/ttyTEST0")
	require.NoError(t, err)
	baudRate, err := pluginDomain.NewBaudRate(57600)
	require.NoError(t, err)
	staleAfter, err := pluginDomain.NewStaleAfter(30 * time.Second)
	require.NoError(t, err)

	store := pluginDomain.NewSensorStore(staleAfter)
	logger := pluginDomain.NewStdLogger(log.New(io.Discard, "", 0), false)
	return NewSerialLineReader(devicePath, baudRate, store, logger), store
}

func runReader(t *testing.T, reader *SerialLineReader) (context.CancelFunc, chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reader.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("reader did not stop after cancellation")
		}
	})
	return cancel, done
}

func hasReading(store *pluginDomain.SensorStore, id pluginDomain.SensorID, value int64) func() bool {
	return func() bool {
		entry, err := store.Lookup(id, time.Now())
		return err == nil && entry.ValueMillidegrees == value
	}
}

func TestSerialLineReader_AppliesValidLines(t *testing.T) {
	port := newFakePort()
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) { return port, nil })

	reader, store := newTestReader(t)
	runReader(t, reader)

	port.send("TEMP:CPU:45000\n")
	port.send("TEMP:GPU:-500\r\n")

	require.Eventually(t, hasReading(store, "CPU", 45000), time.Second, 5*time.Millisecond)
	require.Eventually(t, hasReading(store, "GPU", -500), time.Second, 5*time.Millisecond)
	require.True(t, store.Connected())
	require.EqualValues(t, 0, reader.Rejected())

	entries := store.Snapshot(time.Now())
	require.Len(t, entries, 2)
	require.Equal(t, pluginDomain.SensorID("CPU"), entries[0].SensorID)
	require.Equal(t, pluginDomain.SensorID("GPU"), entries[1].SensorID)
}

func TestSerialLineReader_RejectsMalformedLines(t *testing.T) {
	port := newFakePort()
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) { return port, nil })

	reader, store := newTestReader(t)
	runReader(t, reader)

	port.send("BADLINE\n")
	port.send("TEMP:CPU:45000\n")

	require.Eventually(t, hasReading(store, "CPU", 45000), time.Second, 5*time.Millisecond)
	require.EqualValues(t, 1, reader.Rejected())

	_, err := store.Lookup("BADLINE", time.Now())
	require.ErrorIs(t, err, pluginDomain.ErrNotFound)
	require.Len(t, store.Snapshot(time.Now()), 1)
}

func TestSerialLineReader_SplitAcrossReads(t *testing.T) {
	port := newFakePort()
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) { return port, nil })

	reader, store := newTestReader(t)
	runReader(t, reader)

	port.send("TEMP:C")
	port.send("PU:45")
	port.send("000\nTEMP:GPU:50000\n")

	require.Eventually(t, hasReading(store, "CPU", 45000), time.Second, 5*time.Millisecond)
	require.Eventually(t, hasReading(store, "GPU", 50000), time.Second, 5*time.Millisecond)
	require.EqualValues(t, 0, reader.Rejected())
}

func TestSerialLineReader_BoundsUnterminatedLines(t *testing.T) {
	port := newFakePort()
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) { return port, nil })

	reader, store := newTestReader(t)
	runReader(t, reader)

	// A run of garbage with no newline must be rejected once, and the next
	// complete line after the terminating newline must still be applied.
	garbage := make([]byte, pluginDomain.MaxLineLength+1)
	for i := range garbage {
		garbage[i] = 'x'
	}
	port.data <- garbage
	port.send("still the same line\n")
	port.send("TEMP:CPU:45000\n")

	require.Eventually(t, hasReading(store, "CPU", 45000), time.Second, 5*time.Millisecond)
	require.EqualValues(t, 1, reader.Rejected())
}

func TestSerialLineReader_ReconnectsAfterDeviceLoss(t *testing.T) {
	first := newFakePort()
	second := newFakePort()
	ports := make(chan *fakePort, 2)
	ports <- first
	ports <- second
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) { return <-ports, nil })

	reader, store := newTestReader(t)
	runReader(t, reader)

	first.send("TEMP:CPU:45000\n")
	require.Eventually(t, hasReading(store, "CPU", 45000), time.Second, 5*time.Millisecond)

	first.disconnect()
	require.Eventually(t, func() bool { return !store.Connected() }, time.Second, 5*time.Millisecond)

	// The loop reopens after backoff and resumes updating the same store.
	second.send("TEMP:CPU:46000\n")
	second.send("TEMP:GPU:50000\n")
	require.Eventually(t, hasReading(store, "CPU", 46000), 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, hasReading(store, "GPU", 50000), time.Second, 5*time.Millisecond)

	entries := store.Snapshot(time.Now())
	require.Len(t, entries, 2)
	require.Equal(t, pluginDomain.SensorID("CPU"), entries[0].SensorID, "pre-disconnect order must survive reconnection")
}

func TestSerialLineReader_CancellationDuringOpenRetry(t *testing.T) {
	stubOpenPort(t, func(string, *serial.Mode) (serialPort, error) {
		return nil, errors.New("no such device")
	})

	reader, _ := newTestReader(t)
	cancel, done := runReader(t, reader)

	// Let the loop enter its backoff sleep, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("reader did not exit promptly while waiting to retry")
	}
}

func TestSerialLineReader_ReadsFromRealTTY(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	devicePath, err := pluginDomain.NewDevicePath(slave.Name())
	require.NoError(t, err)
	baudRate, err := pluginDomain.NewBaudRate(57600)
	require.NoError(t, err)
	staleAfter, err := pluginDomain.NewStaleAfter(30 * time.Second)
	require.NoError(t, err)

	store := pluginDomain.NewSensorStore(staleAfter)
	logger := pluginDomain.NewStdLogger(log.New(io.Discard, "", 0), false)
	reader := NewSerialLineReader(devicePath, baudRate, store, logger)
	runReader(t, reader)

	require.Eventually(t, store.Connected, 2*time.Second, 10*time.Millisecond)

	_, err = master.Write([]byte("TEMP:CPU:45000\nTEMP:GPU:-500\n"))
	require.NoError(t, err)

	require.Eventually(t, hasReading(store, "CPU", 45000), 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, hasReading(store, "GPU", -500), 2*time.Second, 10*time.Millisecond)
}
