package aggregation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-advisor/internal/repository"
	"github.com/jonathan/growth-advisor/internal/types"
)

func day(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func seedStudent(repo *repository.MemoryRepository) {
	pct := 91.0
	repo.AddStudent(types.Student{
		ID:         "s1",
		Name:       "Test Student",
		ClassID:    "c1",
		ClassName:  "Grade 9",
		Section:    "B",
		Interests:  []string{"Robotics"},
		Attendance: &pct,
	})
}

func TestCompileStudentNotFound(t *testing.T) {
	repo := repository.NewMemoryRepository()
	agg := New(repo.Ports())

	summary, err := agg.Compile(context.Background(), "missing")
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)
}

func TestCompileAssignmentBounds(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedStudent(repo)

	// 8 assignments with strictly decreasing due dates D1 > D2 > ... > D8.
	for i := 0; i < 8; i++ {
		repo.AddAssignments(types.Assignment{
			ID:      fmt.Sprintf("a%d", i+1),
			ClassID: "c1",
			Title:   fmt.Sprintf("Assignment %d", i+1),
			Subject: "Math",
			DueDate: day(-i),
		})
	}
	repo.AddSubmissions(types.AssignmentSubmission{
		ID: "sub1", AssignmentID: "a1", StudentID: "s1", SubmittedAt: day(1),
	})

	agg := New(repo.Ports())
	summary, err := agg.Compile(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, summary.RecentAssignments, 5)
	for i := 0; i < 4; i++ {
		assert.True(t, summary.RecentAssignments[i].DueDate.After(summary.RecentAssignments[i+1].DueDate),
			"assignments must be due-date descending")
	}
	assert.Equal(t, "Assignment 1", summary.RecentAssignments[0].Title)
	assert.True(t, summary.RecentAssignments[0].Submitted)
	assert.False(t, summary.RecentAssignments[1].Submitted)
}

func TestCompileAttendanceBounds(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedStudent(repo)

	for i := 0; i < 7; i++ {
		repo.AddAttendance(types.DailyAttendance{
			ID:        fmt.Sprintf("d%d", i+1),
			StudentID: "s1",
			Date:      day(-i),
			Status:    types.AttendancePresent,
		})
	}

	agg := New(repo.Ports())
	summary, err := agg.Compile(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, summary.RecentAttendance, 5)
	for i := 0; i < 4; i++ {
		assert.True(t, summary.RecentAttendance[i].Date.After(summary.RecentAttendance[i+1].Date),
			"attendance must be date descending")
	}
	assert.Equal(t, day(0), summary.RecentAttendance[0].Date)
}

func TestCompileReportCardOrdering(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedStudent(repo)
	repo.AddReportCards(
		types.ReportCard{ID: "rc1", StudentID: "s1", TermName: "Term 1", IssueDate: day(-120)},
		types.ReportCard{ID: "rc3", StudentID: "s1", TermName: "Term 3", IssueDate: day(-10)},
		types.ReportCard{ID: "rc2", StudentID: "s1", TermName: "Term 2", IssueDate: day(-60)},
	)

	agg := New(repo.Ports())
	summary, err := agg.Compile(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, summary.ReportCards, 3)
	assert.Equal(t, "Term 3", summary.ReportCards[0].TermName)
	assert.Equal(t, "Term 2", summary.ReportCards[1].TermName)
	assert.Equal(t, "Term 1", summary.ReportCards[2].TermName)
}

func TestCompileDeterministic(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seedStudent(repo)
	for i := 0; i < 6; i++ {
		repo.AddAttendance(types.DailyAttendance{
			ID: fmt.Sprintf("d%d", i), StudentID: "s1", Date: day(-i), Status: types.AttendancePresent,
		})
		repo.AddAssignments(types.Assignment{
			ID: fmt.Sprintf("a%d", i), ClassID: "c1", Title: fmt.Sprintf("A%d", i), Subject: "Math", DueDate: day(-i),
		})
	}

	agg := New(repo.Ports())
	first, err := agg.Compile(context.Background(), "s1")
	require.NoError(t, err)
	second, err := agg.Compile(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, FormatSummary(first), FormatSummary(second),
		"identical records must format to byte-identical summaries")
}

func TestFormatSummaryUnknownAttendance(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.AddStudent(types.Student{ID: "s2", Name: "No Stats", ClassID: "c1", ClassName: "Grade 9", Section: "B"})

	agg := New(repo.Ports())
	summary, err := agg.Compile(context.Background(), "s2")
	require.NoError(t, err)

	text := FormatSummary(summary)
	assert.Contains(t, text, "Overall Attendance: N/A")
	assert.Contains(t, text, "No report cards on record.")
	assert.Contains(t, text, "No daily attendance records.")
}
