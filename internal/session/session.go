// Package session orchestrates one student's advisory session: it owns the
// report lifecycle state machine, wires the aggregator, generator, layout,
// overrides and action plan together, and emits notifications when a
// report is accepted.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/growth-advisor/internal/actionplan"
	"github.com/jonathan/growth-advisor/internal/aggregation"
	"github.com/jonathan/growth-advisor/internal/layout"
	"github.com/jonathan/growth-advisor/internal/notify"
	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/report"
	"github.com/jonathan/growth-advisor/internal/repository"
	"github.com/jonathan/growth-advisor/internal/types"
)

// State is the report lifecycle state.
type State string

// Lifecycle states. Ready and Failed are terminal until the next explicit
// regeneration, which always re-enters Generating first.
const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// FailureKind aliases the generator taxonomy and adds the aggregation
// failure the session itself can produce.
type FailureKind = report.FailureKind

// FailureNotFound means the student profile could not be resolved. Fatal
// for this session; there is nothing to retry.
const FailureNotFound FailureKind = "not_found"

// ErrGenerationInFlight is returned when Generate is called while a
// generation is already pending. The pending call is never cancelled in
// favor of the new one.
var ErrGenerationInFlight = errors.New("a generation is already in flight")

// Generator is the slice of the report generator the session needs.
type Generator interface {
	Generate(ctx context.Context, summary *types.StudentSummary) (*types.GrowthReport, error)
}

// Session is single-user state; methods are safe for the event-driven
// caller plus the generation goroutine.
type Session struct {
	studentID  string
	aggregator *aggregation.Aggregator
	generator  Generator
	layout     *layout.Store
	overrides  *overrides.Store
	tracker    *actionplan.Tracker
	sink       notify.Sink

	mu      sync.Mutex
	state   State
	report  *types.GrowthReport
	failure FailureKind
	lastErr error
	epoch   uint64 // bumped on every Generate entry and Reset; stale results are discarded
}

// Config wires a session's collaborators.
type Config struct {
	StudentID  string
	Aggregator *aggregation.Aggregator
	Generator  Generator
	Layout     *layout.Store
	Overrides  *overrides.Store
	Sink       notify.Sink
}

// New creates an idle session.
func New(cfg Config) *Session {
	return &Session{
		studentID:  cfg.StudentID,
		aggregator: cfg.Aggregator,
		generator:  cfg.Generator,
		layout:     cfg.Layout,
		overrides:  cfg.Overrides,
		tracker:    actionplan.NewTracker(),
		sink:       cfg.Sink,
		state:      StateIdle,
	}
}

// Generate runs one full aggregate-generate-commit cycle. Entering
// Generating clears the previous report and error so stale content is
// never shown against a new request. While a generation is pending,
// further calls fail with ErrGenerationInFlight. The result is only
// committed if the session has not been reset in the meantime.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.state = StateGenerating
	s.report = nil
	s.failure = ""
	s.lastErr = nil
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	summary, err := s.aggregator.Compile(ctx, s.studentID)
	if err != nil {
		kind := report.FailureService
		if errors.Is(err, repository.ErrStudentNotFound) {
			kind = FailureNotFound
		}
		s.commitFailure(epoch, kind, err)
		return err
	}

	generated, err := s.generator.Generate(ctx, summary)
	if err != nil {
		s.commitFailure(epoch, report.Classify(err), err)
		return err
	}

	if s.commitReport(epoch, generated) {
		s.notifyReady(ctx, generated)
	}
	return nil
}

// commitFailure records a failure unless the session moved on.
func (s *Session) commitFailure(epoch uint64, kind FailureKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.state = StateFailed
	s.failure = kind
	s.lastErr = err
	s.report = nil
}

// commitReport accepts a report unless the session moved on; on
// acceptance the action plan is re-initialized, losing prior completion
// marks.
func (s *Session) commitReport(epoch uint64, r *types.GrowthReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.state = StateReady
	s.report = r
	s.failure = ""
	s.lastErr = nil
	s.tracker.InitFrom(r)
	return true
}

// notifyReady emits the report-ready event, plus one focus-area tip when
// the report names any. Sink failures are not the session's problem.
func (s *Session) notifyReady(ctx context.Context, r *types.GrowthReport) {
	if s.sink == nil {
		return
	}
	_ = s.sink.Publish(ctx, notify.New(
		"Growth Plan Ready!",
		"Your personalized growth advice is here.",
		notify.KindSuccess, "AITips", "/student/growth-advisor"))

	if len(r.AreasForFocus) > 0 {
		_ = s.sink.Publish(ctx, notify.New(
			"Focus Area Tip",
			fmt.Sprintf("Consider focusing on %s. Check your plan!", r.AreasForFocus[0]),
			notify.KindAI, "AITips", "/student/growth-advisor"))
	}
}

// Reset returns the session to Idle and invalidates any in-flight
// generation; a response that arrives afterwards is discarded instead of
// being applied to a session that has moved on.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = StateIdle
	s.report = nil
	s.failure = ""
	s.lastErr = nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Report returns the accepted report, or nil outside Ready.
func (s *Session) Report() *types.GrowthReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Failure returns the failure kind and error, or zero values outside
// Failed.
func (s *Session) Failure() (FailureKind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure, s.lastErr
}

// ActionPlan returns the session's step tracker.
func (s *Session) ActionPlan() *actionplan.Tracker {
	return s.tracker
}

// Layout returns the session's widget layout store.
func (s *Session) Layout() *layout.Store {
	return s.layout
}

// Overrides returns the session's override store.
func (s *Session) Overrides() *overrides.Store {
	return s.overrides
}
