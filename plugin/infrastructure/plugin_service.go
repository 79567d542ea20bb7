package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	pluginpb "github.com/okarpenko/ardutemp/pkg/pluginpb/v1"
	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
)

// ServiceName identifies this plugin to the host orchestrator.
const ServiceName = "ardutemp"

// ServiceVersion is reported by the Health endpoint.
const ServiceVersion = "1.0.0"

// readingUnit is the unit of every value this plugin reports.
const readingUnit = "millidegrees"

// PluginService answers the host's device plugin queries from point-in-time
// snapshots of the sensor store. It never touches the serial device, so
// requests are independent of serial timing and of each other beyond the
// store's brief critical section.
type PluginService struct {
	store   *pluginDomain.SensorStore
	logger  pluginDomain.Logger
	clock   func() time.Time
	started time.Time
}

// Health reports the plugin identity and whether the serial device is
// currently attached. A detached device is a warning, not an error: cached
// readings are still served and simply go stale.
func (s *PluginService) Health(
	_ context.Context,
	_ *connect.Request[pluginpb.HealthRequest],
) (*connect.Response[pluginpb.HealthResponse], error) {
	status := pluginpb.HealthResponse_STATUS_WARNING
	if s.store.Connected() {
		status = pluginpb.HealthResponse_STATUS_OK
	}

	return connect.NewResponse(&pluginpb.HealthResponse{
		Name:          ServiceName,
		Version:       ServiceVersion,
		Status:        status,
		UptimeSeconds: uint64(s.clock().Sub(s.started) / time.Second),
	}), nil
}

// ListSensors enumerates every sensor ever observed, in first-seen order.
func (s *PluginService) ListSensors(
	_ context.Context,
	_ *connect.Request[pluginpb.ListSensorsRequest],
) (*connect.Response[pluginpb.ListSensorsResponse], error) {
	entries := s.store.Snapshot(s.clock())
	sensors := make([]*pluginpb.SensorInfo, 0, len(entries))
	for _, entry := range entries {
		sensors = append(sensors, &pluginpb.SensorInfo{
			Id:    string(entry.SensorID),
			Label: fmt.Sprintf("Sensor %s", entry.SensorID),
		})
	}

	return connect.NewResponse(&pluginpb.ListSensorsResponse{Sensors: sensors}), nil
}

// GetReading returns the latest reading for one sensor. An id that was never
// observed yields CodeNotFound; the server keeps serving other requests.
func (s *PluginService) GetReading(
	_ context.Context,
	req *connect.Request[pluginpb.GetReadingRequest],
) (*connect.Response[pluginpb.GetReadingResponse], error) {
	id := pluginDomain.SensorID(req.Msg.SensorId)
	entry, err := s.store.Lookup(id, s.clock())
	if err != nil {
		if errors.Is(err, pluginDomain.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("sensor %q: %w", req.Msg.SensorId, err))
		}
		s.logger.Error("lookup %q: %s", req.Msg.SensorId, err.Error())
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	return connect.NewResponse(&pluginpb.GetReadingResponse{
		SensorId:          string(entry.SensorID),
		ValueMillidegrees: entry.ValueMillidegrees,
		Unit:              readingUnit,
		ObservedAt:        timestamppb.New(entry.ObservedAt),
		Stale:             entry.Stale,
	}), nil
}

// NewPluginService creates a PluginService backed by store.
func NewPluginService(store *pluginDomain.SensorStore, logger pluginDomain.Logger) *PluginService {
	return &PluginService{
		store:   store,
		logger:  logger,
		clock:   time.Now,
		started: time.Now(),
	}
}
