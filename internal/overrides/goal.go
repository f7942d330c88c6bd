package overrides

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/growth-advisor/internal/store"
)

// GoalStore persists the student's free-text current goal. Goals live
// alongside overrides as user-authored content but are not cleared by the
// layout reset.
type GoalStore struct {
	kv        store.KV
	studentID string
}

// NewGoalStore creates a goal store scoped to studentID.
func NewGoalStore(kv store.KV, studentID string) *GoalStore {
	return &GoalStore{kv: kv, studentID: studentID}
}

func (g *GoalStore) key() string {
	return fmt.Sprintf("goal:%s", g.studentID)
}

// Get returns the current goal, or ok=false when none has been set.
func (g *GoalStore) Get(ctx context.Context) (string, bool, error) {
	data, err := g.kv.Get(ctx, g.key())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read goal: %w", err)
	}
	return string(data), true, nil
}

// Set stores the goal text.
func (g *GoalStore) Set(ctx context.Context, goal string) error {
	if err := g.kv.Set(ctx, g.key(), []byte(goal)); err != nil {
		return fmt.Errorf("failed to persist goal: %w", err)
	}
	return nil
}
