package report

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// growthReportSchema is the JSON Schema the raw response must satisfy
// before it is unmarshaled. It pins the required top-level fields and
// their shapes; deeper validation happens on the typed struct.
const growthReportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "growthSummary",
    "subjectInsights",
    "identifiedStrengths",
    "areasForFocus",
    "actionableSteps",
    "careerPathways",
    "motivationalQuote"
  ],
  "properties": {
    "growthSummary": { "type": "string", "minLength": 1 },
    "subjectInsights": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["subjectName"],
        "properties": {
          "subjectName": { "type": "string", "minLength": 1 },
          "currentPerformance": { "type": "string" },
          "trend": { "type": "string" },
          "suggestions": { "type": "array" },
          "resources": { "type": "array" }
        }
      }
    },
    "identifiedStrengths": { "type": "array", "items": { "type": "string" } },
    "areasForFocus": { "type": "array", "items": { "type": "string" } },
    "actionableSteps": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["task"],
        "properties": {
          "id": { "type": "string" },
          "task": { "type": "string", "minLength": 1 },
          "category": { "type": "string" },
          "explanation": { "type": "string" }
        }
      }
    },
    "careerPathways": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "relevance": { "type": "string" }
        }
      }
    },
    "electiveSuggestions": { "type": "array" },
    "weeklyStudyPlan": { "type": "array" },
    "performanceOutlook": { "type": "object" },
    "subjectCorrelations": { "type": "array" },
    "motivationalQuote": {
      "type": "object",
      "required": ["quote"],
      "properties": {
        "quote": { "type": "string", "minLength": 1 },
        "author": { "type": "string" }
      }
    }
  }
}`

// validateResponseSchema checks the raw JSON text against the report
// schema and folds violations into a single SchemaError.
func validateResponseSchema(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(growthReportSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaError{Message: "response is not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	fields := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fields = append(fields, field+": "+desc.Description())
	}
	if len(fields) > 5 {
		fields = append(fields[:5], "...")
	}
	return &SchemaError{Message: "schema violations: " + strings.Join(fields, "; ")}
}
