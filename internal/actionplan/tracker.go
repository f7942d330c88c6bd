// Package actionplan tracks per-session completion of a report's
// actionable steps. Completion marks are deliberately not persisted: a new
// accepted report re-initializes the tracker and prior marks are lost,
// matching how layouts and overrides persist but step completion does not.
package actionplan

import (
	"github.com/jonathan/growth-advisor/internal/types"
)

// Step is one actionable step with its session-scoped completion flag.
type Step struct {
	types.ActionableStep
	Completed bool
}

// Tracker holds the current session's step states in order.
type Tracker struct {
	steps []Step
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// InitFrom replaces the tracked steps with the report's actionable steps,
// all incomplete.
func (t *Tracker) InitFrom(r *types.GrowthReport) {
	t.steps = make([]Step, 0, len(r.ActionableSteps))
	for _, s := range r.ActionableSteps {
		t.steps = append(t.steps, Step{ActionableStep: s})
	}
}

// Toggle flips the completion flag for stepID. Unknown ids are ignored.
func (t *Tracker) Toggle(stepID string) {
	for i := range t.steps {
		if t.steps[i].ID == stepID {
			t.steps[i].Completed = !t.steps[i].Completed
			return
		}
	}
}

// Steps returns a copy of the current step states.
func (t *Tracker) Steps() []Step {
	return append([]Step(nil), t.steps...)
}

// Completed returns how many steps are marked complete.
func (t *Tracker) Completed() int {
	n := 0
	for _, s := range t.steps {
		if s.Completed {
			n++
		}
	}
	return n
}
