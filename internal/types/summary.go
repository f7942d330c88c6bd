package types

import "time"

// StudentSummary is the bounded, deterministic aggregation of a student's
// records that gets embedded into the generation prompt. It is built fresh
// for every generation request and never persisted.
type StudentSummary struct {
	StudentID         string              `json:"student_id"`
	Name              string              `json:"name"`
	ClassName         string              `json:"class_name"`
	Section           string              `json:"section"`
	Interests         []string            `json:"interests"`
	AttendancePercent *float64            `json:"attendance_percent,omitempty"` // nil = unknown, rendered as N/A
	RecentAttendance  []AttendanceEntry   `json:"recent_attendance"`            // date descending, at most 5
	RecentAssignments []AssignmentEntry   `json:"recent_assignments"`           // due date descending, at most 5
	ReportCards       []ReportCardSummary `json:"report_cards"`                 // issue date descending, all terms
}

// AttendanceEntry is one recent daily attendance line in the summary.
type AttendanceEntry struct {
	Date   time.Time        `json:"date"`
	Status AttendanceStatus `json:"status"`
}

// AssignmentEntry is one recent assignment line in the summary, flagged with
// whether a submission record exists for the student.
type AssignmentEntry struct {
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	DueDate       time.Time `json:"due_date"`
	Submitted     bool      `json:"submitted"`
	SubmittedAt   time.Time `json:"submitted_at,omitempty"`
	Grade         string    `json:"grade,omitempty"`
	MarksObtained *float64  `json:"marks_obtained,omitempty"`
	MaxMarks      *float64  `json:"max_marks,omitempty"`
}

// ReportCardSummary is one term's report card condensed for the summary.
type ReportCardSummary struct {
	TermName          string          `json:"term_name"`
	IssueDate         time.Time       `json:"issue_date"`
	OverallGrade      string          `json:"overall_grade,omitempty"`
	OverallPercentage *float64        `json:"overall_percentage,omitempty"`
	Subjects          []SubjectResult `json:"subjects"`
	TeacherComments   string          `json:"teacher_comments,omitempty"`
}
