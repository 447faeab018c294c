// Package store holds submitted traffic observations in process memory.
// The store is constructed at startup and handed to the API by reference;
// there is no persistence, and a Clear wipes everything.
package store

import (
	"sync"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"
)

// DefaultTolerance is the per-axis matching tolerance for Near. It differs
// from the rounded-equality rule used by MatchAt; the two rules are kept
// deliberately distinct.
const DefaultTolerance = 0.01

// MemoryStore is an unbounded, append-only collection of observations, safe
// for concurrent use.
type MemoryStore struct {
	mu           sync.RWMutex
	observations []domain.Observation
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Submit appends an observation. Always succeeds; there is no deduplication.
func (s *MemoryStore) Submit(obs domain.Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observations = append(s.observations, obs)
}

// Count returns the number of stored observations.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observations)
}

// Latest returns the last n observations in insertion order. Asking for more
// than exist truncates to what is there; an empty store yields an empty
// slice, never an error.
func (s *MemoryStore) Latest(n int) []domain.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(s.observations) {
		n = len(s.observations)
	}
	out := make([]domain.Observation, n)
	copy(out, s.observations[len(s.observations)-n:])
	return out
}

// Clear empties the store and returns how many observations were dropped.
// Irreversible.
func (s *MemoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := len(s.observations)
	s.observations = nil
	return dropped
}

// MatchAt returns observations whose coordinates equal loc after rounding
// both axes to two decimals.
func (s *MemoryStore) MatchAt(loc domain.Coordinate) []domain.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Observation
	for _, obs := range s.observations {
		if obs.Location.RoundedEqual(loc) {
			matched = append(matched, obs)
		}
	}
	return matched
}

// Near returns observations within tolerance of loc on both axes
// independently.
func (s *MemoryStore) Near(loc domain.Coordinate, tolerance float64) []domain.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Observation
	for _, obs := range s.observations {
		if obs.Location.Within(loc, tolerance) {
			matched = append(matched, obs)
		}
	}
	return matched
}

// Snapshot returns a copy of every stored observation in insertion order.
func (s *MemoryStore) Snapshot() []domain.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Observation, len(s.observations))
	copy(out, s.observations)
	return out
}
