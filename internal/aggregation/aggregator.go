// Package aggregation compiles a student's heterogeneous records into the
// bounded, deterministic summary embedded in the generation prompt.
package aggregation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/growth-advisor/internal/repository"
	"github.com/jonathan/growth-advisor/internal/types"
)

// maxRecentEntries bounds the attendance and assignment detail lists so the
// prompt stays compact regardless of history length.
const maxRecentEntries = 5

// Aggregator reads the repository ports and assembles StudentSummary
// values. It has no state beyond the ports and no side effects.
type Aggregator struct {
	repos repository.Repositories
}

// New creates an Aggregator over the given ports.
func New(repos repository.Repositories) *Aggregator {
	return &Aggregator{repos: repos}
}

// Compile resolves the student profile and assembles the summary. It fails
// with repository.ErrStudentNotFound when the profile cannot be resolved;
// empty record lists are valid inputs, not errors.
//
// For identical underlying records the output is byte-for-byte identical:
// every list is sorted on date then id before truncation.
func (a *Aggregator) Compile(ctx context.Context, studentID string) (*types.StudentSummary, error) {
	profile, err := a.repos.Students.GetProfile(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student %s: %w", studentID, err)
	}

	var (
		attendance  []types.DailyAttendance
		assignments []types.Assignment
		submissions []types.AssignmentSubmission
		reportCards []types.ReportCard
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attendance, err = a.repos.Attendance.GetAttendance(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = a.repos.Assignments.GetAssignments(gctx, profile.ClassID)
		return err
	})
	g.Go(func() error {
		var err error
		submissions, err = a.repos.Assignments.GetSubmissions(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		reportCards, err = a.repos.ReportCards.GetReportCards(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read records for %s: %w", studentID, err)
	}

	summary := &types.StudentSummary{
		StudentID:         profile.ID,
		Name:              profile.Name,
		ClassName:         profile.ClassName,
		Section:           profile.Section,
		Interests:         append([]string(nil), profile.Interests...),
		AttendancePercent: profile.Attendance,
		RecentAttendance:  recentAttendance(attendance),
		RecentAssignments: recentAssignments(assignments, submissions),
		ReportCards:       sortedReportCards(reportCards),
	}
	return summary, nil
}

// recentAttendance returns the most recent entries, date descending,
// truncated to maxRecentEntries.
func recentAttendance(entries []types.DailyAttendance) []types.AttendanceEntry {
	sorted := append([]types.DailyAttendance(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > maxRecentEntries {
		sorted = sorted[:maxRecentEntries]
	}

	out := make([]types.AttendanceEntry, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, types.AttendanceEntry{Date: e.Date, Status: e.Status})
	}
	return out
}

// recentAssignments returns the most recent class assignments by due date
// descending, truncated to maxRecentEntries, each flagged with whether a
// submission record exists for the student.
func recentAssignments(assignments []types.Assignment, submissions []types.AssignmentSubmission) []types.AssignmentEntry {
	byAssignment := make(map[string]types.AssignmentSubmission, len(submissions))
	for _, s := range submissions {
		byAssignment[s.AssignmentID] = s
	}

	sorted := append([]types.Assignment(nil), assignments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].DueDate.Equal(sorted[j].DueDate) {
			return sorted[i].DueDate.After(sorted[j].DueDate)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > maxRecentEntries {
		sorted = sorted[:maxRecentEntries]
	}

	out := make([]types.AssignmentEntry, 0, len(sorted))
	for _, a := range sorted {
		entry := types.AssignmentEntry{
			Title:    a.Title,
			Subject:  a.Subject,
			DueDate:  a.DueDate,
			MaxMarks: a.MaxMarks,
		}
		if sub, ok := byAssignment[a.ID]; ok {
			entry.Submitted = true
			entry.SubmittedAt = sub.SubmittedAt
			entry.Grade = sub.Grade
			entry.MarksObtained = sub.MarksObtained
			if sub.MarksObtained != nil && entry.MaxMarks == nil {
				entry.MaxMarks = a.MaxMarks
			}
		}
		out = append(out, entry)
	}
	return out
}

// sortedReportCards returns every term, issue date descending. All terms
// are kept; trend analysis downstream needs the full sequence.
func sortedReportCards(cards []types.ReportCard) []types.ReportCardSummary {
	sorted := append([]types.ReportCard(nil), cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].IssueDate.Equal(sorted[j].IssueDate) {
			return sorted[i].IssueDate.After(sorted[j].IssueDate)
		}
		return sorted[i].ID > sorted[j].ID
	})

	out := make([]types.ReportCardSummary, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, types.ReportCardSummary{
			TermName:          c.TermName,
			IssueDate:         c.IssueDate,
			OverallGrade:      c.OverallGrade,
			OverallPercentage: c.OverallPercentage,
			Subjects:          append([]types.SubjectResult(nil), c.Subjects...),
			TeacherComments:   c.TeacherComments,
		})
	}
	return out
}

// FormatSummary renders the summary as the prompt text block. The output
// is deterministic for a given summary.
func FormatSummary(s *types.StudentSummary) string {
	var sb strings.Builder

	sb.WriteString("Student Profile:\n")
	fmt.Fprintf(&sb, "Name: %s (ID: %s)\n", s.Name, s.StudentID)
	fmt.Fprintf(&sb, "Class: %s %s\n", s.ClassName, s.Section)
	if len(s.Interests) > 0 {
		fmt.Fprintf(&sb, "Interests: %s\n", strings.Join(s.Interests, ", "))
	} else {
		sb.WriteString("Interests: Not specified\n")
	}
	if s.AttendancePercent != nil {
		fmt.Fprintf(&sb, "Overall Attendance: %.1f%%\n", *s.AttendancePercent)
	} else {
		sb.WriteString("Overall Attendance: N/A\n")
	}

	sb.WriteString("\nReport Cards (Recent First):\n")
	if len(s.ReportCards) == 0 {
		sb.WriteString("No report cards on record.\n")
	}
	for _, rc := range s.ReportCards {
		fmt.Fprintf(&sb, "Term: %s (Issued: %s)\n", rc.TermName, rc.IssueDate.Format("2006-01-02"))
		fmt.Fprintf(&sb, "Overall Grade: %s, Percentage: %s\n",
			orNA(rc.OverallGrade), formatPercent(rc.OverallPercentage))
		sb.WriteString("Subjects:\n")
		for _, subj := range rc.Subjects {
			fmt.Fprintf(&sb, "- %s: Marks %.1f/%.1f, Grade: %s\n",
				subj.SubjectName, subj.MarksObtained, subj.MaxMarks, subj.Grade)
		}
		fmt.Fprintf(&sb, "Teacher Comments: %s\n---\n", orNone(rc.TeacherComments))
	}

	sb.WriteString("\nAssignment Submissions Summary (Recent First):\n")
	if len(s.RecentAssignments) == 0 {
		sb.WriteString("No assignment records found.\n")
	}
	for _, a := range s.RecentAssignments {
		fmt.Fprintf(&sb, "- Assignment %q (Subject: %s): Due %s. ",
			a.Title, a.Subject, a.DueDate.Format("2006-01-02"))
		if a.Submitted {
			fmt.Fprintf(&sb, "Submitted %s, Grade: %s, Marks: %s/%s\n",
				a.SubmittedAt.Format("2006-01-02"), orNA(a.Grade),
				formatMarks(a.MarksObtained), formatMarks(a.MaxMarks))
		} else {
			sb.WriteString("Status: Pending/Not Submitted\n")
		}
	}

	sb.WriteString("\nRecent Attendance (last 5 days if available):\n")
	if len(s.RecentAttendance) == 0 {
		sb.WriteString("No daily attendance records.\n")
	}
	for _, e := range s.RecentAttendance {
		fmt.Fprintf(&sb, "- %s: %s\n", e.Date.Format("2006-01-02"), e.Status)
	}

	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func formatPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *p)
}

func formatMarks(m *float64) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *m)
}
