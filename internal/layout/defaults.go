// Package layout manages the ordered, visibility-tagged widget
// configuration for the report presentation, persisted per student.
package layout

import (
	"github.com/jonathan/growth-advisor/internal/types"
)

// Widget ids known to the engine. Stable keys: persisted configs are
// merged by id, so renaming one would orphan saved layouts.
const (
	WidgetGrowthSnapshot      = "growthSnapshot"
	WidgetAttendanceSummary   = "attendanceSummary"
	WidgetAssignmentSummary   = "assignmentSummary"
	WidgetStrengthsFocus      = "strengthsFocus"
	WidgetSubjectInsights     = "subjectInsights"
	WidgetActionPlan          = "actionPlan"
	WidgetStudyPlan           = "studyPlan"
	WidgetElectiveSuggestions = "electiveSuggestions"
	WidgetPerformanceOutlook  = "performanceOutlook"
	WidgetSubjectCorrelations = "subjectCorrelations"
	WidgetCareerPathways      = "careerPathways"
	WidgetMotivationalGoal    = "motivationalGoal"
	WidgetGamifiedScoreboard  = "gamifiedScoreboard"
)

// DefaultWidgets returns the hard-coded default configuration. The
// gamified scoreboard ships hidden; its visibility follows the
// gamification feature toggle.
func DefaultWidgets() []types.WidgetConfig {
	return []types.WidgetConfig{
		{ID: WidgetGrowthSnapshot, DisplayName: "Growth Snapshot", IsVisible: true, Order: 1, Icon: "TrendingUp"},
		{ID: WidgetAttendanceSummary, DisplayName: "Attendance Overview", IsVisible: true, Order: 2, Icon: "CalendarDays"},
		{ID: WidgetAssignmentSummary, DisplayName: "Assignment Summary", IsVisible: true, Order: 3, Icon: "Assignments"},
		{ID: WidgetStrengthsFocus, DisplayName: "Strengths & Focus Areas", IsVisible: true, Order: 4, Icon: "Target"},
		{ID: WidgetSubjectInsights, DisplayName: "Subject Insights", IsVisible: true, Order: 5, Icon: "BrainCircuit"},
		{ID: WidgetActionPlan, DisplayName: "Action Plan", IsVisible: true, Order: 6, Icon: "CheckCircle"},
		{ID: WidgetStudyPlan, DisplayName: "Weekly Study Plan", IsVisible: true, Order: 7, Icon: "Timetable"},
		{ID: WidgetElectiveSuggestions, DisplayName: "Elective Suggestions", IsVisible: true, Order: 8, Icon: "Lightbulb"},
		{ID: WidgetPerformanceOutlook, DisplayName: "Performance Outlook", IsVisible: true, Order: 9, Icon: "TrendingUp"},
		{ID: WidgetSubjectCorrelations, DisplayName: "Subject Synergies", IsVisible: true, Order: 10, Icon: "BrainCircuit"},
		{ID: WidgetCareerPathways, DisplayName: "Career Pathways", IsVisible: true, Order: 11, Icon: "Reports"},
		{ID: WidgetMotivationalGoal, DisplayName: "Motivation & Goals", IsVisible: true, Order: 12, Icon: "Speech"},
		{ID: WidgetGamifiedScoreboard, DisplayName: "Gamified Scoreboard", IsVisible: false, Order: 13, Icon: "Grades"},
	}
}
