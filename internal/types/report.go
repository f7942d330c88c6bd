package types

import (
	"github.com/go-playground/validator/v10"
)

// GrowthReport is the structured output of one generation call. Once parsed
// and validated it is treated as immutable; a new generation replaces it
// wholesale.
type GrowthReport struct {
	GrowthSummary       string               `json:"growthSummary" validate:"required,min=1"`
	SubjectInsights     []SubjectInsight     `json:"subjectInsights" validate:"required,dive"`
	IdentifiedStrengths []string             `json:"identifiedStrengths" validate:"required"`
	AreasForFocus       []string             `json:"areasForFocus" validate:"required"`
	ActionableSteps     []ActionableStep     `json:"actionableSteps" validate:"required,dive"`
	CareerPathways      []CareerPathway      `json:"careerPathways" validate:"required,dive"`
	ElectiveSuggestions []ElectiveSuggestion `json:"electiveSuggestions,omitempty"`
	WeeklyStudyPlan     []StudyDay           `json:"weeklyStudyPlan,omitempty"`
	PerformanceOutlook  *PerformanceOutlook  `json:"performanceOutlook,omitempty"`
	SubjectCorrelations []SubjectCorrelation `json:"subjectCorrelations,omitempty"`
	MotivationalQuote   MotivationalQuote    `json:"motivationalQuote" validate:"required"`
}

// SubjectInsight is the per-subject analysis within a growth report.
type SubjectInsight struct {
	SubjectName        string              `json:"subjectName" validate:"required"`
	CurrentPerformance string              `json:"currentPerformance,omitempty"`
	Trend              string              `json:"trend,omitempty"`
	Suggestions        []InsightSuggestion `json:"suggestions"`
	Resources          []SuggestedResource `json:"resources"`
}

// InsightSuggestion is one piece of advice attached to a subject insight.
type InsightSuggestion struct {
	Text        string `json:"text" validate:"required"`
	Explanation string `json:"explanation,omitempty"`
}

// SuggestedResource is one learning resource attached to a subject insight.
type SuggestedResource struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type,omitempty"` // video, article, book, interactive, course, practice
	URL  string `json:"url,omitempty"`
}

// ActionableStep is one discrete recommended task, trackable as
// complete/incomplete for the current session.
type ActionableStep struct {
	ID          string `json:"id" validate:"required"`
	Task        string `json:"task" validate:"required"`
	Category    string `json:"category,omitempty"` // Revision, Practice, Exploration, Skill Development
	Explanation string `json:"explanation,omitempty"`
}

// CareerPathway is one suggested career direction.
type CareerPathway struct {
	Name      string `json:"name" validate:"required"`
	Relevance string `json:"relevance,omitempty"`
}

// ElectiveSuggestion is one suggested elective with its rationale.
type ElectiveSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
}

// StudyDay is one day of the weekly study plan.
type StudyDay struct {
	Day   string      `json:"day"`
	Focus string      `json:"focus,omitempty"`
	Tasks []StudyTask `json:"tasks"`
}

// StudyTask is one timed activity within a study day.
type StudyTask struct {
	Time      string              `json:"time,omitempty"`
	Activity  string              `json:"activity"`
	Subject   string              `json:"subject,omitempty"`
	Resources []SuggestedResource `json:"resources,omitempty"`
}

// PerformanceOutlook is the forward-looking assessment section.
type PerformanceOutlook struct {
	OutlookStatement     string   `json:"outlookStatement"`
	KeySupportingActions []string `json:"keySupportingActions"`
}

// SubjectCorrelation describes how performance in one subject relates to
// another.
type SubjectCorrelation struct {
	SubjectA        string `json:"subjectA"`
	SubjectB        string `json:"subjectB"`
	CorrelationType string `json:"correlationType,omitempty"` // positive or negative
	Description     string `json:"description,omitempty"`
	Suggestion      string `json:"suggestion,omitempty"`
}

// MotivationalQuote is the closing quote of a growth report.
type MotivationalQuote struct {
	Quote  string `json:"quote" validate:"required,min=1"`
	Author string `json:"author,omitempty"`
}

// Validate validates the GrowthReport using the validator.
func (r *GrowthReport) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
