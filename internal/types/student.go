// Package types defines the shared domain types for the growth advisory
// report engine: student records, the aggregated summary, the generated
// report, and widget layout configuration.
package types

import "time"

// Student is a student profile record as returned by the student repository.
type Student struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ClassID    string   `json:"class_id"`
	ClassName  string   `json:"class_name"`
	Section    string   `json:"section"`
	Interests  []string `json:"interests,omitempty"`
	Attendance *float64 `json:"attendance,omitempty"` // overall percentage; nil when unknown
}

// AttendanceStatus enumerates daily attendance outcomes.
type AttendanceStatus string

// Attendance statuses recorded per school day.
const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// DailyAttendance is one day's attendance entry for a student.
type DailyAttendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

// Assignment is a class assignment record.
type Assignment struct {
	ID       string    `json:"id"`
	ClassID  string    `json:"class_id"`
	Title    string    `json:"title"`
	Subject  string    `json:"subject"`
	DueDate  time.Time `json:"due_date"`
	MaxMarks *float64  `json:"max_marks,omitempty"`
}

// AssignmentSubmission is a student's submission for one assignment.
type AssignmentSubmission struct {
	ID            string    `json:"id"`
	AssignmentID  string    `json:"assignment_id"`
	StudentID     string    `json:"student_id"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Grade         string    `json:"grade,omitempty"`
	MarksObtained *float64  `json:"marks_obtained,omitempty"`
}

// SubjectResult is one subject row on a report card.
type SubjectResult struct {
	SubjectName   string  `json:"subject_name"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      float64 `json:"max_marks"`
	Grade         string  `json:"grade"`
}

// ReportCard is one term's report card for a student.
type ReportCard struct {
	ID                string          `json:"id"`
	StudentID         string          `json:"student_id"`
	TermName          string          `json:"term_name"`
	IssueDate         time.Time       `json:"issue_date"`
	OverallGrade      string          `json:"overall_grade,omitempty"`
	OverallPercentage *float64        `json:"overall_percentage,omitempty"`
	Subjects          []SubjectResult `json:"subjects"`
	TeacherComments   string          `json:"teacher_comments,omitempty"`
}
