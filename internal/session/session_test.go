package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-advisor/internal/aggregation"
	"github.com/jonathan/growth-advisor/internal/layout"
	"github.com/jonathan/growth-advisor/internal/notify"
	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/report"
	"github.com/jonathan/growth-advisor/internal/repository"
	"github.com/jonathan/growth-advisor/internal/store"
	"github.com/jonathan/growth-advisor/internal/types"
)

// fakeGenerator returns a canned report or error; gate, when set, blocks
// the call until released so tests can hold a generation in flight.
type fakeGenerator struct {
	report *types.GrowthReport
	err    error
	gate   chan struct{}
}

func (g *fakeGenerator) Generate(ctx context.Context, _ *types.StudentSummary) (*types.GrowthReport, error) {
	if g.gate != nil {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.report, nil
}

// captureSink records published notifications.
type captureSink struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

func (s *captureSink) Publish(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *captureSink) all() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Notification(nil), s.notifications...)
}

func sampleReport() *types.GrowthReport {
	return &types.GrowthReport{
		GrowthSummary:       "Steady improvement across the term.",
		SubjectInsights:     []types.SubjectInsight{{SubjectName: "Math"}},
		IdentifiedStrengths: []string{"Problem solving"},
		AreasForFocus:       []string{"Essay structure"},
		ActionableSteps: []types.ActionableStep{
			{ID: "step-1", Task: "Revise quadratic equations"},
			{ID: "step-2", Task: "Draft one essay outline"},
		},
		CareerPathways:    []types.CareerPathway{{Name: "Engineering"}},
		MotivationalQuote: types.MotivationalQuote{Quote: "Keep going.", Author: "Anon"},
	}
}

func newTestSession(t *testing.T, gen Generator, sink notify.Sink) *Session {
	t.Helper()
	repo := repository.NewMemoryRepository()
	pct := 88.0
	repo.AddStudent(types.Student{
		ID: "s1", Name: "Test Student", ClassID: "c1",
		ClassName: "Grade 9", Section: "A", Attendance: &pct,
	})

	kv := store.NewMemoryKV()
	ov := overrides.NewStore(kv, "s1")
	lay, err := layout.Load(context.Background(), kv, "s1", ov)
	require.NoError(t, err)

	return New(Config{
		StudentID:  "s1",
		Aggregator: aggregation.New(repo.Ports()),
		Generator:  gen,
		Layout:     lay,
		Overrides:  ov,
		Sink:       sink,
	})
}

func TestGenerateSuccess(t *testing.T) {
	sink := &captureSink{}
	s := newTestSession(t, &fakeGenerator{report: sampleReport()}, sink)

	require.NoError(t, s.Generate(context.Background()))

	assert.Equal(t, StateReady, s.State())
	require.NotNil(t, s.Report())
	assert.Equal(t, "Steady improvement across the term.", s.Report().GrowthSummary)

	kind, err := s.Failure()
	assert.Empty(t, kind)
	assert.NoError(t, err)

	// Action plan initialized from the accepted report, all incomplete.
	steps := s.ActionPlan().Steps()
	require.Len(t, steps, 2)
	assert.Zero(t, s.ActionPlan().Completed())

	// One ready notification plus one focus-area tip.
	notes := sink.all()
	require.Len(t, notes, 2)
	assert.Equal(t, "Growth Plan Ready!", notes[0].Title)
	assert.Equal(t, notify.KindSuccess, notes[0].Kind)
	assert.Equal(t, "Focus Area Tip", notes[1].Title)
	assert.Equal(t, notify.KindAI, notes[1].Kind)
	assert.Contains(t, notes[1].Message, "Essay structure")
}

func TestGenerateNoFocusAreasSkipsTip(t *testing.T) {
	r := sampleReport()
	r.AreasForFocus = []string{}
	sink := &captureSink{}
	s := newTestSession(t, &fakeGenerator{report: r}, sink)

	require.NoError(t, s.Generate(context.Background()))

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Growth Plan Ready!", notes[0].Title)
}

func TestGenerateFailureClearsStaleState(t *testing.T) {
	gen := &fakeGenerator{report: sampleReport()}
	s := newTestSession(t, gen, nil)

	require.NoError(t, s.Generate(context.Background()))
	require.Equal(t, StateReady, s.State())
	s.ActionPlan().Toggle("step-1")
	require.Equal(t, 1, s.ActionPlan().Completed())

	// Second attempt fails; the previously accepted report must not
	// survive alongside the failure.
	gen.report = nil
	gen.err = &report.SchemaError{Message: "missing required field growthSummary"}
	require.Error(t, s.Generate(context.Background()))

	assert.Equal(t, StateFailed, s.State())
	assert.Nil(t, s.Report())
	kind, err := s.Failure()
	assert.Equal(t, report.FailureSchema, kind)
	assert.Error(t, err)
}

func TestGenerateStudentNotFound(t *testing.T) {
	repo := repository.NewMemoryRepository()
	kv := store.NewMemoryKV()
	ov := overrides.NewStore(kv, "ghost")
	lay, err := layout.Load(context.Background(), kv, "ghost", ov)
	require.NoError(t, err)

	s := New(Config{
		StudentID:  "ghost",
		Aggregator: aggregation.New(repo.Ports()),
		Generator:  &fakeGenerator{report: sampleReport()},
		Layout:     lay,
		Overrides:  ov,
	})

	require.Error(t, s.Generate(context.Background()))
	assert.Equal(t, StateFailed, s.State())
	kind, _ := s.Failure()
	assert.Equal(t, FailureNotFound, kind)
}

func TestGenerateRejectsConcurrentCall(t *testing.T) {
	gate := make(chan struct{})
	s := newTestSession(t, &fakeGenerator{report: sampleReport(), gate: gate}, nil)

	done := make(chan error, 1)
	go func() { done <- s.Generate(context.Background()) }()

	// Wait for the first call to enter Generating.
	require.Eventually(t, func() bool {
		return s.State() == StateGenerating
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, s.Generate(context.Background()), ErrGenerationInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, StateReady, s.State())
}

func TestResetDiscardsStaleResult(t *testing.T) {
	gate := make(chan struct{})
	sink := &captureSink{}
	s := newTestSession(t, &fakeGenerator{report: sampleReport(), gate: gate}, sink)

	done := make(chan error, 1)
	go func() { done <- s.Generate(context.Background()) }()
	require.Eventually(t, func() bool {
		return s.State() == StateGenerating
	}, time.Second, time.Millisecond)

	// Reset while the response is still pending; when it arrives it
	// belongs to a dead epoch and must be dropped.
	s.Reset()
	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Report())
	assert.Empty(t, sink.all(), "a discarded result must not notify")
}

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, &fakeGenerator{report: sampleReport()}, nil)

	// No report, no overrides: placeholder.
	content, err := s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, Placeholder, content.GrowthSummary)

	// Generated value X.
	require.NoError(t, s.Generate(ctx))
	content, err = s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Steady improvement across the term.", content.GrowthSummary)
	assert.Equal(t, []string{"Problem solving"}, content.Strengths)

	// Override Y wins over generated X.
	require.NoError(t, s.Overrides().SetText(ctx, overrides.FieldGrowthSummary, "My own summary"))
	require.NoError(t, s.Overrides().SetList(ctx, overrides.FieldStrengths, "Chess, Debate"))
	content, err = s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My own summary", content.GrowthSummary)
	assert.Equal(t, []string{"Chess", "Debate"}, content.Strengths)
	assert.Equal(t, []string{"Essay structure"}, content.FocusAreas, "unoverridden field keeps generated value")

	// Restore defaults clears overrides; generated X shows again.
	require.NoError(t, s.Layout().RestoreDefaults(ctx))
	content, err = s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Steady improvement across the term.", content.GrowthSummary)
	assert.Equal(t, []string{"Problem solving"}, content.Strengths)
}

func TestVisibleWidgets(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, &fakeGenerator{report: sampleReport()}, nil)

	visible := s.VisibleWidgets()
	require.NotEmpty(t, visible)
	total := len(s.Layout().Snapshot())
	assert.Len(t, visible, total-1, "gamified scoreboard is hidden by default")

	require.NoError(t, s.Layout().SetVisibility(ctx, layout.WidgetCareerPathways, false))
	assert.Len(t, s.VisibleWidgets(), total-2)
	for _, w := range s.VisibleWidgets() {
		assert.True(t, w.IsVisible)
		assert.NotEqual(t, layout.WidgetCareerPathways, w.ID)
	}
}
