package report

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jonathan/growth-advisor/internal/aggregation"
	"github.com/jonathan/growth-advisor/internal/llm"
	"github.com/jonathan/growth-advisor/internal/prompts"
	"github.com/jonathan/growth-advisor/internal/types"
)

// Generator produces GrowthReport values from student summaries. It holds
// a single generation client; concurrency control (one call in flight per
// session) is the session's responsibility.
type Generator struct {
	client llm.Client
}

// New creates a Generator over an existing generation client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// NewGemini creates a Generator backed by Gemini. A missing API key is a
// ConfigurationError: the service is unusable until an operator fixes it.
func NewGemini(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	}
	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, &ConfigurationError{Message: "failed to create generation client", Cause: err}
	}
	return &Generator{client: client}, nil
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	return g.client.Close()
}

// Generate builds the prompt from the summary, invokes the generation
// service once, and parses and validates the response. Every error is one
// of ConfigurationError, SchemaError, QuotaError or ServiceError; there is
// no automatic retry on any of them.
func (g *Generator) Generate(ctx context.Context, summary *types.StudentSummary) (*types.GrowthReport, error) {
	prompt := BuildPrompt(summary)

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		if isQuotaExhausted(err) {
			return nil, &QuotaError{Message: "generation rejected", Cause: err}
		}
		return nil, &ServiceError{Message: "generation call failed", Cause: err}
	}

	return parseResponse(raw)
}

// BuildPrompt renders the advisor prompt with the formatted summary
// embedded. Exposed for verbose CLI output and tests.
func BuildPrompt(summary *types.StudentSummary) string {
	template := prompts.MustGet("growth-report")
	return prompts.Format(template, map[string]string{
		"StudentData": aggregation.FormatSummary(summary),
	})
}

// parseResponse strips code fences, validates against the response schema,
// unmarshals, and runs struct-level validation. Steps missing ids get
// generated ones so the action plan can track them.
func parseResponse(raw string) (*types.GrowthReport, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := validateResponseSchema(cleaned); err != nil {
		return nil, err
	}

	var parsed types.GrowthReport
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &SchemaError{Message: "failed to parse response JSON", Cause: err}
	}

	for i := range parsed.ActionableSteps {
		if parsed.ActionableSteps[i].ID == "" {
			parsed.ActionableSteps[i].ID = uuid.NewString()
		}
	}

	if err := parsed.Validate(); err != nil {
		return nil, &SchemaError{Message: "response failed validation", Cause: err}
	}

	return &parsed, nil
}
