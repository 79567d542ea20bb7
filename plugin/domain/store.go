package domain

import (
	"sync"
	"time"
)

// SnapshotEntry is one sensor's latest reading with its staleness computed
// at snapshot time.
type SnapshotEntry struct {
	Reading
	Stale bool
}

// SensorStore is the shared, concurrency-safe cache of each sensor's latest
// reading. The ingestion loop is its single writer; plugin request handlers
// are its readers. Entries are created on the first valid reading for an id
// and replaced atomically thereafter, never deleted: a sensor that stops
// reporting becomes stale, not absent. First-seen order is preserved so that
// enumeration stays stable across updates.
type SensorStore struct {
	mu         sync.RWMutex
	readings   map[SensorID]Reading
	order      []SensorID
	staleAfter time.Duration
	connected  bool
}

// Upsert inserts or replaces the entry for the reading's sensor id.
// The replacement is atomic with respect to concurrent Lookup and Snapshot
// calls: readers never observe a value paired with another reading's
// timestamp.
func (s *SensorStore) Upsert(reading Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.readings[reading.SensorID]; !seen {
		s.order = append(s.order, reading.SensorID)
	}
	s.readings[reading.SensorID] = reading
}

// Lookup returns the latest reading for id with its staleness computed
// against now. It returns ErrNotFound for an id that was never observed.
func (s *SensorStore) Lookup(id SensorID, now time.Time) (SnapshotEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reading, ok := s.readings[id]
	if !ok {
		return SnapshotEntry{}, ErrNotFound
	}
	return SnapshotEntry{Reading: reading, Stale: s.isStale(reading, now)}, nil
}

// Snapshot returns an independent copy of every entry in first-seen order.
// Staleness is derived lazily from now; no background sweep exists.
func (s *SensorStore) Snapshot(now time.Time) []SnapshotEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]SnapshotEntry, 0, len(s.order))
	for _, id := range s.order {
		reading := s.readings[id]
		entries = append(entries, SnapshotEntry{Reading: reading, Stale: s.isStale(reading, now)})
	}
	return entries
}

// SetConnected records whether the serial device is currently attached.
func (s *SensorStore) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

// Connected reports whether the serial device is currently attached.
func (s *SensorStore) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *SensorStore) isStale(reading Reading, now time.Time) bool {
	return now.Sub(reading.ObservedAt) > s.staleAfter
}

// NewSensorStore creates an empty SensorStore that reports readings older
// than staleAfter as stale.
func NewSensorStore(staleAfter StaleAfter) *SensorStore {
	return &SensorStore{
		readings:   make(map[SensorID]Reading),
		staleAfter: time.Duration(staleAfter),
	}
}
