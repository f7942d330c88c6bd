// Package overrides holds user-edited replacements for generated report
// fields. Overrides persist per student and field, independently of the
// generated report and of the widget layout, and survive regeneration.
package overrides

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/growth-advisor/internal/store"
)

// Field identifies an overridable report field.
type Field string

// Overridable fields. GrowthSummary holds text; the other two hold lists.
const (
	FieldGrowthSummary Field = "growthSummary"
	FieldStrengths     Field = "strengths"
	FieldFocusAreas    Field = "focusAreas"
)

// Fields lists every overridable field, in display order.
var Fields = []Field{FieldGrowthSummary, FieldStrengths, FieldFocusAreas}

// ListDelimiter splits delimited list input in SetList.
const ListDelimiter = ","

// Store reads and writes override records for one student.
type Store struct {
	kv        store.KV
	studentID string
}

// NewStore creates an override store scoped to studentID.
func NewStore(kv store.KV, studentID string) *Store {
	return &Store{kv: kv, studentID: studentID}
}

func (s *Store) key(field Field) string {
	return fmt.Sprintf("override:%s:%s", field, s.studentID)
}

// GetText returns the text override for field, or ok=false when no
// override has ever been set (fall back to the generated value).
func (s *Store) GetText(ctx context.Context, field Field) (string, bool, error) {
	data, err := s.kv.Get(ctx, s.key(field))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read override %s: %w", field, err)
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", false, fmt.Errorf("failed to parse override %s: %w", field, err)
	}
	return value, true, nil
}

// GetList returns the list override for field, or ok=false when unset.
// An empty stored list is a valid override (explicit user clear).
func (s *Store) GetList(ctx context.Context, field Field) ([]string, bool, error) {
	data, err := s.kv.Get(ctx, s.key(field))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read override %s: %w", field, err)
	}
	var value []string
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, fmt.Errorf("failed to parse override %s: %w", field, err)
	}
	return value, true, nil
}

// SetText stores a text override for field.
func (s *Store) SetText(ctx context.Context, field Field, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal override %s: %w", field, err)
	}
	if err := s.kv.Set(ctx, s.key(field), data); err != nil {
		return fmt.Errorf("failed to persist override %s: %w", field, err)
	}
	return nil
}

// SetList splits the delimited input, trims each item, drops empties, and
// stores the result. Storing an empty resulting list is permitted: it is
// the user explicitly clearing the field.
func (s *Store) SetList(ctx context.Context, field Field, delimited string) error {
	items := SplitList(delimited)
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal override %s: %w", field, err)
	}
	if err := s.kv.Set(ctx, s.key(field), data); err != nil {
		return fmt.Errorf("failed to persist override %s: %w", field, err)
	}
	return nil
}

// ClearAll removes every field override for the student. Invoked by the
// widget layout reset; overrides have no standalone reset surface.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, field := range Fields {
		if err := s.kv.Delete(ctx, s.key(field)); err != nil {
			return fmt.Errorf("failed to clear override %s: %w", field, err)
		}
	}
	return nil
}

// SplitList splits delimited text into trimmed, non-empty items.
func SplitList(delimited string) []string {
	parts := strings.Split(delimited, ListDelimiter)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
