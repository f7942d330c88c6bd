// Package toggles manages the process-wide optional-feature switches.
// Unlike widget layouts and overrides, toggles are not keyed per student;
// a change is persisted once and broadcast to every subscriber.
package toggles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/growth-advisor/internal/store"
)

// kvKey is the process-wide persistence key for the toggle map.
const kvKey = "featureToggles"

// Gamification controls the gamified scoreboard widget.
const Gamification = "gamification"

// Listener receives toggle change notifications.
type Listener func(name string, enabled bool)

// Store holds the toggle map, persists changes, and notifies subscribers.
type Store struct {
	mu        sync.RWMutex
	kv        store.KV
	toggles   map[string]bool
	listeners []Listener
}

// Load creates a Store from persisted state. A missing key yields the
// defaults (all optional features off).
func Load(ctx context.Context, kv store.KV) (*Store, error) {
	s := &Store{kv: kv, toggles: map[string]bool{Gamification: false}}

	data, err := kv.Get(ctx, kvKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load feature toggles: %w", err)
	}

	var persisted map[string]bool
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("failed to parse feature toggles: %w", err)
	}
	for name, enabled := range persisted {
		s.toggles[name] = enabled
	}
	return s, nil
}

// Get returns whether a feature is enabled. Unknown features are off.
func (s *Store) Get(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toggles[name]
}

// Set persists the new value and then notifies every subscriber. The
// notification only fires once the write succeeded.
func (s *Store) Set(ctx context.Context, name string, enabled bool) error {
	s.mu.Lock()
	s.toggles[name] = enabled
	data, err := json.Marshal(s.toggles)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to marshal feature toggles: %w", err)
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if err := s.kv.Set(ctx, kvKey, data); err != nil {
		return fmt.Errorf("failed to persist feature toggles: %w", err)
	}

	for _, l := range listeners {
		l(name, enabled)
	}
	return nil
}

// Subscribe registers a listener for toggle changes.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}
