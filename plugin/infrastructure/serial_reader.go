// Package infrastructure provides concrete implementations around the domain:
// the serial ingestion loop, the device plugin RPC handler, and flag parsing.
package infrastructure

import (
	"bytes"
	"context"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"go.bug.st/serial"

	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
)

// serialPort is the slice of go.bug.st/serial.Port the reader actually uses.
// Tests substitute in-memory implementations through openPort.
type serialPort interface {
	Read(p []byte) (int, error)
	Close() error
}

// openPort is overridable so tests can stub the device.
var openPort = func(path string, mode *serial.Mode) (serialPort, error) {
	return serial.Open(path, mode)
}

var (
	linesAccepted    = metrics.NewCounter("ardutemp_lines_accepted_total")
	linesRejected    = metrics.NewCounter("ardutemp_lines_rejected_total")
	deviceReconnects = metrics.NewCounter("ardutemp_device_reconnects_total")
)

const (
	minReconnectDelay = 1 * time.Second
	maxReconnectDelay = 10 * time.Second
	readBufferSize    = 1024
)

// SerialLineReader drives a persistent read loop against the serial device.
// Each delimited line is parsed and, on success, applied to the sensor store;
// rejected lines are counted and discarded. Device loss is tolerated
// indefinitely: the handle is closed and reopened with capped-growth backoff
// that resets after a successful read.
type SerialLineReader struct {
	devicePath pluginDomain.DevicePath
	baudRate   pluginDomain.BaudRate
	store      *pluginDomain.SensorStore
	logger     pluginDomain.Logger
	clock      func() time.Time
	rejected   atomic.Uint64
}

// Rejected returns how many lines were discarded due to parse failures.
func (r *SerialLineReader) Rejected() uint64 {
	return r.rejected.Load()
}

// Run executes the ingestion loop until ctx is cancelled. It only ever
// returns on cancellation; open failures and read errors are retried.
func (r *SerialLineReader) Run(ctx context.Context) {
	delay := minReconnectDelay
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		mode := &serial.Mode{
			BaudRate: int(r.baudRate),
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
		port, err := openPort(string(r.devicePath), mode)
		if err != nil {
			r.logger.Error("open %s: %s", r.devicePath, err.Error())
			if !r.wait(ctx, delay) {
				return
			}
			delay = nextDelay(delay)
			continue
		}

		r.logger.Info("connected to %s", r.devicePath)
		deviceReconnects.Inc()
		r.store.SetConnected(true)

		// A blocking read can only be interrupted by closing the handle.
		stop := context.AfterFunc(ctx, func() { port.Close() })
		gotData, readErr := r.consume(ctx, port)
		stop()
		port.Close()
		r.store.SetConnected(false)

		if ctx.Err() != nil {
			return
		}
		if gotData {
			delay = minReconnectDelay
		}
		r.logger.Error("device lost: %s", readErr.Error())
		if !r.wait(ctx, delay) {
			return
		}
		delay = nextDelay(delay)
	}
}

// consume reads the port until an I/O error, splitting the byte stream into
// newline-terminated records. An over-long line is rejected and the stream is
// skipped forward to the next newline so buffering stays bounded. It reports
// whether any bytes arrived, which resets the reconnect backoff.
func (r *SerialLineReader) consume(ctx context.Context, port serialPort) (bool, error) {
	buf := make([]byte, readBufferSize)
	partial := make([]byte, 0, pluginDomain.MaxLineLength)
	gotData := false
	discarding := false

	for {
		select {
		case <-ctx.Done():
			return gotData, ctx.Err()
		default:
		}

		n, err := port.Read(buf)
		if n > 0 {
			gotData = true
			data := buf[:n]
			for len(data) > 0 {
				idx := bytes.IndexByte(data, '\n')
				if idx < 0 {
					if !discarding {
						partial = append(partial, data...)
						if len(partial) > pluginDomain.MaxLineLength {
							r.reject(&pluginDomain.ParseError{
								Kind:    pluginDomain.LineTooLong,
								Message: "unterminated line exceeds maximum length",
							})
							partial = partial[:0]
							discarding = true
						}
					}
					break
				}
				if discarding {
					// Tail of an over-long line already rejected.
					discarding = false
				} else {
					r.handleLine(append(partial, data[:idx]...))
				}
				partial = partial[:0]
				data = data[idx+1:]
			}
		}
		if err != nil {
			return gotData, err
		}
	}
}

// handleLine parses one raw record and applies it to the store.
func (r *SerialLineReader) handleLine(line []byte) {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if len(line) == 0 {
		return
	}

	reading, err := pluginDomain.ParseRecord(string(line), r.clock())
	if err != nil {
		r.reject(err)
		return
	}

	r.store.Upsert(reading)
	linesAccepted.Inc()
	r.logger.Debug("reading: sensor=%s value=%d", reading.SensorID, reading.ValueMillidegrees)
}

func (r *SerialLineReader) reject(err error) {
	r.rejected.Add(1)
	linesRejected.Inc()
	r.logger.Debug("dropping line: %s", err.Error())
}

// wait sleeps for delay unless ctx is cancelled first.
func (r *SerialLineReader) wait(ctx context.Context, delay time.Duration) bool {
	r.logger.Info("reconnecting to %s in %s", r.devicePath, delay)
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}

func nextDelay(delay time.Duration) time.Duration {
	delay *= 2
	if delay > maxReconnectDelay {
		delay = maxReconnectDelay
	}
	return delay
}

// NewSerialLineReader creates a reader that feeds parsed readings from the
// configured device into store.
func NewSerialLineReader(
	devicePath pluginDomain.DevicePath,
	baudRate pluginDomain.BaudRate,
	store *pluginDomain.SensorStore,
	logger pluginDomain.Logger,
) *SerialLineReader {
	return &SerialLineReader{
		devicePath: devicePath,
		baudRate:   baudRate,
		store:      store,
		logger:     logger,
		clock:      time.Now,
	}
}
