package session

import (
	"context"

	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/types"
)

// Placeholder is shown for text fields when neither an override nor a
// generated report exists.
const Placeholder = "No growth advice available at the moment."

// ResolvedContent is the consumer-visible view of the overridable report
// fields after precedence resolution: override wins over generated, which
// wins over the placeholder. Rendering is an external collaborator's
// concern; the core only resolves values.
type ResolvedContent struct {
	GrowthSummary string
	Strengths     []string
	FocusAreas    []string
}

// Resolve applies override precedence over the current report.
func (s *Session) Resolve(ctx context.Context) (*ResolvedContent, error) {
	s.mu.Lock()
	generated := s.report
	s.mu.Unlock()

	out := &ResolvedContent{GrowthSummary: Placeholder}
	if generated != nil {
		out.GrowthSummary = generated.GrowthSummary
		out.Strengths = append([]string(nil), generated.IdentifiedStrengths...)
		out.FocusAreas = append([]string(nil), generated.AreasForFocus...)
	}

	if s.overrides == nil {
		return out, nil
	}

	if v, ok, err := s.overrides.GetText(ctx, overrides.FieldGrowthSummary); err != nil {
		return nil, err
	} else if ok {
		out.GrowthSummary = v
	}
	if v, ok, err := s.overrides.GetList(ctx, overrides.FieldStrengths); err != nil {
		return nil, err
	} else if ok {
		out.Strengths = v
	}
	if v, ok, err := s.overrides.GetList(ctx, overrides.FieldFocusAreas); err != nil {
		return nil, err
	} else if ok {
		out.FocusAreas = v
	}
	return out, nil
}

// VisibleWidgets returns the visible widgets in display order. Hidden
// widgets are omitted; the renderer dispatches on the ids.
func (s *Session) VisibleWidgets() []types.WidgetConfig {
	if s.layout == nil {
		return nil
	}
	all := s.layout.Snapshot()
	visible := make([]types.WidgetConfig, 0, len(all))
	for _, w := range all {
		if w.IsVisible {
			visible = append(visible, w)
		}
	}
	return visible
}
