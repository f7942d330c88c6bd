package overrides

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-advisor/internal/store"
)

func TestGetMissSignalsFallback(t *testing.T) {
	s := NewStore(store.NewMemoryKV(), "s1")
	ctx := context.Background()

	_, ok, err := s.GetText(ctx, FieldGrowthSummary)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.GetList(ctx, FieldStrengths)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetTextRoundTrip(t *testing.T) {
	s := NewStore(store.NewMemoryKV(), "s1")
	ctx := context.Background()

	require.NoError(t, s.SetText(ctx, FieldGrowthSummary, "my own words"))

	value, ok, err := s.GetText(ctx, FieldGrowthSummary)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "my own words", value)
}

func TestSetListSplitsTrimsAndDrops(t *testing.T) {
	tests := []struct {
		name      string
		delimited string
		want      []string
	}{
		{
			name:      "plain list",
			delimited: "Algebra, Essay writing, Chess",
			want:      []string{"Algebra", "Essay writing", "Chess"},
		},
		{
			name:      "extra whitespace and empties",
			delimited: "  Algebra ,, ,Essay writing ,",
			want:      []string{"Algebra", "Essay writing"},
		},
		{
			name:      "empty input stores empty list",
			delimited: "   ",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(store.NewMemoryKV(), "s1")
			ctx := context.Background()

			require.NoError(t, s.SetList(ctx, FieldFocusAreas, tt.delimited))

			got, ok, err := s.GetList(ctx, FieldFocusAreas)
			require.NoError(t, err)
			assert.True(t, ok, "an explicitly stored empty list is still an override")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverridesAreScopedPerStudent(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, NewStore(kv, "s1").SetText(ctx, FieldGrowthSummary, "for s1"))

	_, ok, err := NewStore(kv, "s2").GetText(ctx, FieldGrowthSummary)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearAll(t *testing.T) {
	s := NewStore(store.NewMemoryKV(), "s1")
	ctx := context.Background()

	require.NoError(t, s.SetText(ctx, FieldGrowthSummary, "text"))
	require.NoError(t, s.SetList(ctx, FieldStrengths, "a, b"))
	require.NoError(t, s.SetList(ctx, FieldFocusAreas, "c"))

	require.NoError(t, s.ClearAll(ctx))

	_, ok, err := s.GetText(ctx, FieldGrowthSummary)
	require.NoError(t, err)
	assert.False(t, ok)
	for _, field := range []Field{FieldStrengths, FieldFocusAreas} {
		_, ok, err := s.GetList(ctx, field)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestGoalStore(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	goals := NewGoalStore(kv, "s1")

	_, ok, err := goals.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, goals.Set(ctx, "Score an A in Science next term"))

	goal, ok, err := goals.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Score an A in Science next term", goal)
}
