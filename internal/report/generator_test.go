package report

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/jonathan/growth-advisor/internal/types"
)

// fakeClient satisfies llm.Client with canned output.
type fakeClient struct {
	response string
	err      error
}

func (c *fakeClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return c.response, c.err
}

func (c *fakeClient) Close() error { return nil }

const validResponse = `{
  "growthSummary": "A strong term overall.",
  "subjectInsights": [
    {
      "subjectName": "Math",
      "currentPerformance": "85%",
      "trend": "improving",
      "suggestions": [{"text": "Practice word problems", "explanation": "Targets the weakest question type."}],
      "resources": [{"name": "Khan Academy Algebra", "type": "video"}]
    }
  ],
  "identifiedStrengths": ["Consistent homework submission"],
  "areasForFocus": ["Geometry proofs"],
  "actionableSteps": [
    {"id": "step-1", "task": "Complete two proof exercises", "category": "Practice"}
  ],
  "careerPathways": [{"name": "Data Science", "relevance": "Builds on strong math results."}],
  "motivationalQuote": {"quote": "Small steps add up.", "author": "Unknown"}
}`

func sampleSummary() *types.StudentSummary {
	pct := 92.0
	return &types.StudentSummary{
		StudentID:         "s1",
		Name:              "Test Student",
		ClassName:         "Grade 9",
		Section:           "A",
		AttendancePercent: &pct,
	}
}

func TestGenerateParsesValidResponse(t *testing.T) {
	g := New(&fakeClient{response: validResponse})

	r, err := g.Generate(context.Background(), sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, "A strong term overall.", r.GrowthSummary)
	require.Len(t, r.SubjectInsights, 1)
	assert.Equal(t, "Math", r.SubjectInsights[0].SubjectName)
	assert.Equal(t, []string{"Geometry proofs"}, r.AreasForFocus)
	require.Len(t, r.ActionableSteps, 1)
	assert.Equal(t, "step-1", r.ActionableSteps[0].ID)
	assert.Equal(t, "Small steps add up.", r.MotivationalQuote.Quote)
}

func TestGenerateStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	g := New(&fakeClient{response: fenced})

	r, err := g.Generate(context.Background(), sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, "A strong term overall.", r.GrowthSummary)
}

func TestGenerateFillsMissingStepIDs(t *testing.T) {
	response := `{
	  "growthSummary": "Summary.",
	  "subjectInsights": [],
	  "identifiedStrengths": [],
	  "areasForFocus": [],
	  "actionableSteps": [
	    {"task": "First task"},
	    {"id": "kept", "task": "Second task"}
	  ],
	  "careerPathways": [],
	  "motivationalQuote": {"quote": "Q."}
	}`
	g := New(&fakeClient{response: response})

	r, err := g.Generate(context.Background(), sampleSummary())
	require.NoError(t, err)
	require.Len(t, r.ActionableSteps, 2)
	assert.NotEmpty(t, r.ActionableSteps[0].ID, "missing step id must be generated")
	assert.Equal(t, "kept", r.ActionableSteps[1].ID)
}

func TestGenerateMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "not json", response: "I could not produce JSON, sorry."},
		{name: "truncated json", response: `{"growthSummary": "cut off`},
		{
			name:     "missing required field",
			response: `{"growthSummary": "ok", "subjectInsights": [], "identifiedStrengths": [], "areasForFocus": [], "actionableSteps": [], "careerPathways": []}`,
		},
		{
			name:     "wrong field type",
			response: `{"growthSummary": 42, "subjectInsights": [], "identifiedStrengths": [], "areasForFocus": [], "actionableSteps": [], "careerPathways": [], "motivationalQuote": {"quote": "q"}}`,
		},
		{
			name:     "empty growth summary",
			response: `{"growthSummary": "", "subjectInsights": [], "identifiedStrengths": [], "areasForFocus": [], "actionableSteps": [], "careerPathways": [], "motivationalQuote": {"quote": "q"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fakeClient{response: tt.response})

			r, err := g.Generate(context.Background(), sampleSummary())
			assert.Nil(t, r)
			require.Error(t, err)
			assert.Equal(t, FailureSchema, Classify(err))
		})
	}
}

func TestGenerateQuotaClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "http 429",
			err:  &googleapi.Error{Code: 429, Message: "rate limited"},
			want: FailureQuota,
		},
		{
			name: "resource exhausted text",
			err:  fmt.Errorf("rpc error: RESOURCE_EXHAUSTED"),
			want: FailureQuota,
		},
		{
			name: "quota text",
			err:  errors.New("quota exceeded for model"),
			want: FailureQuota,
		},
		{
			name: "other transport error",
			err:  errors.New("connection reset by peer"),
			want: FailureService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fakeClient{err: tt.err})

			r, err := g.Generate(context.Background(), sampleSummary())
			assert.Nil(t, r)
			require.Error(t, err)
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	g, err := NewGemini(context.Background(), "", "")
	assert.Nil(t, g)
	require.Error(t, err)
	assert.Equal(t, FailureConfiguration, Classify(err))
}

func TestBuildPromptEmbedsSummary(t *testing.T) {
	prompt := BuildPrompt(sampleSummary())
	assert.Contains(t, prompt, "Test Student")
	assert.Contains(t, prompt, "Grade 9")
	assert.NotContains(t, prompt, "{{.StudentData}}", "placeholder must be substituted")
}

func TestClassifyUnknownErrorIsService(t *testing.T) {
	assert.Equal(t, FailureService, Classify(errors.New("boom")))
}
