package repository

import (
	"time"

	"github.com/jonathan/growth-advisor/internal/types"
)

// SeedDemo returns an in-memory repository with one fully populated demo
// student, used when no school database is configured.
func SeedDemo() *MemoryRepository {
	repo := NewMemoryRepository()

	attendancePct := 92.5
	repo.AddStudent(types.Student{
		ID:         "s001",
		Name:       "Alice Wonderland",
		ClassID:    "c10a",
		ClassName:  "Grade 10",
		Section:    "A",
		Interests:  []string{"Mathematics", "Creative Writing", "Chess"},
		Attendance: &attendancePct,
	})

	day := func(offset int) time.Time {
		return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	}
	repo.AddAttendance(
		types.DailyAttendance{ID: "a1", StudentID: "s001", Date: day(0), Status: types.AttendancePresent},
		types.DailyAttendance{ID: "a2", StudentID: "s001", Date: day(1), Status: types.AttendancePresent},
		types.DailyAttendance{ID: "a3", StudentID: "s001", Date: day(2), Status: types.AttendanceLate},
		types.DailyAttendance{ID: "a4", StudentID: "s001", Date: day(3), Status: types.AttendancePresent},
		types.DailyAttendance{ID: "a5", StudentID: "s001", Date: day(4), Status: types.AttendanceAbsent},
		types.DailyAttendance{ID: "a6", StudentID: "s001", Date: day(7), Status: types.AttendancePresent},
	)

	maxMarks := 100.0
	repo.AddAssignments(
		types.Assignment{ID: "as1", ClassID: "c10a", Title: "Algebra Problem Set 3", Subject: "Math", DueDate: day(2), MaxMarks: &maxMarks},
		types.Assignment{ID: "as2", ClassID: "c10a", Title: "Essay: A Person I Admire", Subject: "English", DueDate: day(5), MaxMarks: &maxMarks},
		types.Assignment{ID: "as3", ClassID: "c10a", Title: "Cell Structure Lab Report", Subject: "Science", DueDate: day(9), MaxMarks: &maxMarks},
		types.Assignment{ID: "as4", ClassID: "c10a", Title: "History Timeline Project", Subject: "History", DueDate: day(14), MaxMarks: &maxMarks},
	)
	marks := 88.0
	repo.AddSubmissions(
		types.AssignmentSubmission{ID: "sub1", AssignmentID: "as2", StudentID: "s001", SubmittedAt: day(6), Grade: "A-", MarksObtained: &marks},
		types.AssignmentSubmission{ID: "sub2", AssignmentID: "as4", StudentID: "s001", SubmittedAt: day(15), Grade: "B+"},
	)

	pct1, pct2 := 84.2, 79.8
	repo.AddReportCards(
		types.ReportCard{
			ID: "rc2", StudentID: "s001", TermName: "Term 2 2025-26", IssueDate: day(30),
			OverallGrade: "A-", OverallPercentage: &pct1,
			Subjects: []types.SubjectResult{
				{SubjectName: "Math", MarksObtained: 92, MaxMarks: 100, Grade: "A"},
				{SubjectName: "English", MarksObtained: 88, MaxMarks: 100, Grade: "A-"},
				{SubjectName: "Science", MarksObtained: 72, MaxMarks: 100, Grade: "B"},
			},
			TeacherComments: "Strong quarter overall; science concepts need steadier revision.",
		},
		types.ReportCard{
			ID: "rc1", StudentID: "s001", TermName: "Term 1 2025-26", IssueDate: day(120),
			OverallGrade: "B+", OverallPercentage: &pct2,
			Subjects: []types.SubjectResult{
				{SubjectName: "Math", MarksObtained: 85, MaxMarks: 100, Grade: "A-"},
				{SubjectName: "English", MarksObtained: 84, MaxMarks: 100, Grade: "A-"},
				{SubjectName: "Science", MarksObtained: 68, MaxMarks: 100, Grade: "B-"},
			},
			TeacherComments: "A promising start to the year.",
		},
	)

	return repo
}
