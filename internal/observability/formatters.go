// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/growth-advisor/internal/actionplan"
	"github.com/jonathan/growth-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the compiled student summary header.
func (p *Printer) PrintSummary(s *types.StudentSummary) {
	if s == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Student:    %s (%s)\n", s.Name, s.StudentID)
	fmt.Fprintf(&sb, "Class:      %s %s\n", s.ClassName, s.Section)
	if s.AttendancePercent != nil {
		fmt.Fprintf(&sb, "Attendance: %.1f%%\n", *s.AttendancePercent)
	} else {
		sb.WriteString("Attendance: N/A\n")
	}
	fmt.Fprintf(&sb, "Records:    %d report cards, %d recent assignments, %d attendance days",
		len(s.ReportCards), len(s.RecentAssignments), len(s.RecentAttendance))

	p.printBox("Student Summary", sb.String())
}

// PrintReport outputs a human-readable view of the growth report with the
// resolved (override-applied) summary, strengths and focus areas.
func (p *Printer) PrintReport(r *types.GrowthReport, summary string, strengths, focusAreas []string) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(wrap(summary, boxWidth-6))
	sb.WriteString("\n")

	if len(strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		appendItems(&sb, strengths)
	}
	if len(focusAreas) > 0 {
		sb.WriteString("\nAreas for Focus:\n")
		appendItems(&sb, focusAreas)
	}

	if len(r.SubjectInsights) > 0 {
		sb.WriteString("\nSubject Insights:\n")
		for _, ins := range r.SubjectInsights {
			fmt.Fprintf(&sb, "  • %s", ins.SubjectName)
			if ins.CurrentPerformance != "" {
				fmt.Fprintf(&sb, " — %s", ins.CurrentPerformance)
			}
			if ins.Trend != "" {
				fmt.Fprintf(&sb, " (%s)", ins.Trend)
			}
			sb.WriteString("\n")
		}
	}

	if r.MotivationalQuote.Quote != "" {
		fmt.Fprintf(&sb, "\n%q", r.MotivationalQuote.Quote)
		if r.MotivationalQuote.Author != "" {
			fmt.Fprintf(&sb, " — %s", r.MotivationalQuote.Author)
		}
		sb.WriteString("\n")
	}

	p.printBox("Growth Report", sb.String())
}

// PrintActionPlan outputs the step list with completion marks.
func (p *Printer) PrintActionPlan(steps []actionplan.Step) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range steps {
		mark := " "
		if s.Completed {
			mark = "x"
		}
		fmt.Fprintf(&sb, "[%s] %s", mark, s.Task)
		if s.Category != "" {
			fmt.Fprintf(&sb, " (%s)", s.Category)
		}
		sb.WriteString("\n")
	}
	p.printBox("Action Plan", strings.TrimRight(sb.String(), "\n"))
}

// PrintWidgets outputs the layout snapshot.
func (p *Printer) PrintWidgets(widgets []types.WidgetConfig) {
	var sb strings.Builder
	for _, w := range widgets {
		visibility := "visible"
		if !w.IsVisible {
			visibility = "hidden"
		}
		fmt.Fprintf(&sb, "%2d. %-24s %-20s %s\n", w.Order, w.ID, w.DisplayName, visibility)
	}
	p.printBox("Widget Layout", strings.TrimRight(sb.String(), "\n"))
}

func appendItems(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
