package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/store"
	"github.com/jonathan/growth-advisor/internal/toggles"
	"github.com/jonathan/growth-advisor/internal/types"
)

// Direction is a move direction for Move.
type Direction string

// Move directions.
const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// ErrUnknownWidget is returned when an operation names a widget id outside
// the current default map.
var ErrUnknownWidget = errors.New("unknown widget id")

// Store is the authoritative in-memory widget configuration for one
// student. Every mutation writes the full config back to the KV store
// synchronously; there is no separate save step.
type Store struct {
	mu        sync.Mutex
	kv        store.KV
	studentID string
	widgets   []types.WidgetConfig // always sorted ascending by Order
	overrides *overrides.Store
}

// Load reads the persisted configuration for studentID and merges it over
// the defaults: for every widget id in the default map, the persisted
// value wins if present; unknown persisted ids are dropped and new default
// ids keep their default position. The overrides store is needed because
// RestoreDefaults also clears the student's content overrides.
func Load(ctx context.Context, kv store.KV, studentID string, ov *overrides.Store) (*Store, error) {
	s := &Store{kv: kv, studentID: studentID, overrides: ov}

	defaults := DefaultWidgets()
	data, err := kv.Get(ctx, s.key())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.widgets = defaults
			return s, nil
		}
		return nil, fmt.Errorf("failed to load widget config: %w", err)
	}

	var persisted []types.WidgetConfig
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("failed to parse widget config: %w", err)
	}

	byID := make(map[string]types.WidgetConfig, len(persisted))
	for _, w := range persisted {
		byID[w.ID] = w
	}
	merged := make([]types.WidgetConfig, 0, len(defaults))
	for _, def := range defaults {
		if saved, ok := byID[def.ID]; ok {
			merged = append(merged, saved)
		} else {
			merged = append(merged, def)
		}
	}
	sortByOrder(merged)
	renumber(merged)

	s.widgets = merged
	return s, nil
}

func (s *Store) key() string {
	return fmt.Sprintf("widgetConfig:%s", s.studentID)
}

// Snapshot returns the full configuration, hidden widgets included,
// ordered ascending by Order.
func (s *Store) Snapshot() []types.WidgetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.WidgetConfig(nil), s.widgets...)
}

// VisibleIDs returns the ids of visible widgets in display order.
func (s *Store) VisibleIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.widgets))
	for _, w := range s.widgets {
		if w.IsVisible {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// SetVisibility flips visibility for one widget without touching any
// order value, then persists.
func (s *Store) SetVisibility(ctx context.Context, widgetID string, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(widgetID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, widgetID)
	}
	s.widgets[idx].IsVisible = visible
	return s.persist(ctx)
}

// Move swaps the widget with its neighbor in the direction given, then
// renumbers every order field as the 1-based position in the resulting
// array. Renumbering happens on every successful move, not just a value
// swap, so the contiguity invariant holds even if prior state had gaps.
// Moving the first widget up or the last one down is a no-op.
func (s *Store) Move(ctx context.Context, widgetID string, dir Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(widgetID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, widgetID)
	}

	var target int
	switch dir {
	case MoveUp:
		target = idx - 1
	case MoveDown:
		target = idx + 1
	default:
		return fmt.Errorf("invalid move direction %q", dir)
	}
	if target < 0 || target >= len(s.widgets) {
		return nil
	}

	s.widgets[idx], s.widgets[target] = s.widgets[target], s.widgets[idx]
	renumber(s.widgets)
	return s.persist(ctx)
}

// RestoreDefaults resets the configuration to the hard-coded default map
// exactly, persists it, and clears every content override for the student.
// Layout reset and override reset are coupled by design.
func (s *Store) RestoreDefaults(ctx context.Context) error {
	s.mu.Lock()
	s.widgets = DefaultWidgets()
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if s.overrides != nil {
		if err := s.overrides.ClearAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// BindToggles subscribes the store to feature toggle changes so the
// gamified scoreboard appears and disappears with the gamification
// toggle, and applies the current toggle state once.
func (s *Store) BindToggles(ctx context.Context, t *toggles.Store) error {
	t.Subscribe(func(name string, enabled bool) {
		if name != toggles.Gamification {
			return
		}
		// Listener errors have nowhere to surface; layout stays stale
		// until the next explicit mutation.
		_ = s.SetVisibility(ctx, WidgetGamifiedScoreboard, enabled)
	})

	enabled := t.Get(toggles.Gamification)
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(WidgetGamifiedScoreboard)
	if idx >= 0 && s.widgets[idx].IsVisible != enabled {
		s.widgets[idx].IsVisible = enabled
		return s.persist(ctx)
	}
	return nil
}

// indexOf returns the widget's position in the order-sorted slice, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(widgetID string) int {
	for i, w := range s.widgets {
		if w.ID == widgetID {
			return i
		}
	}
	return -1
}

// persist writes the full config back to the KV store. Callers must hold
// s.mu. A persistence failure surfaces to the caller; it is never ignored.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.widgets)
	if err != nil {
		return fmt.Errorf("failed to marshal widget config: %w", err)
	}
	if err := s.kv.Set(ctx, s.key(), data); err != nil {
		return fmt.Errorf("failed to persist widget config: %w", err)
	}
	return nil
}

func sortByOrder(widgets []types.WidgetConfig) {
	sort.SliceStable(widgets, func(i, j int) bool {
		return widgets[i].Order < widgets[j].Order
	})
}

// renumber rewrites every Order as the 1-based slice position.
func renumber(widgets []types.WidgetConfig) {
	for i := range widgets {
		widgets[i].Order = i + 1
	}
}
