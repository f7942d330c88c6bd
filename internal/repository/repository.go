// Package repository defines the read-only query ports over student
// records, plus Postgres and in-memory adapters. The core consumes these
// interfaces; it never mutates school records.
package repository

import (
	"context"
	"errors"

	"github.com/jonathan/growth-advisor/internal/types"
)

// ErrStudentNotFound is returned by GetProfile when no student exists for
// the id. List queries signal absence with an empty slice instead.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository resolves student profiles.
type StudentRepository interface {
	GetProfile(ctx context.Context, studentID string) (*types.Student, error)
}

// AttendanceRepository lists daily attendance entries for a student.
type AttendanceRepository interface {
	GetAttendance(ctx context.Context, studentID string) ([]types.DailyAttendance, error)
}

// AssignmentRepository lists a class's assignments and a student's
// submissions.
type AssignmentRepository interface {
	GetAssignments(ctx context.Context, classID string) ([]types.Assignment, error)
	GetSubmissions(ctx context.Context, studentID string) ([]types.AssignmentSubmission, error)
}

// ReportCardRepository lists a student's term report cards.
type ReportCardRepository interface {
	GetReportCards(ctx context.Context, studentID string) ([]types.ReportCard, error)
}

// Repositories bundles the four ports the aggregator consumes.
type Repositories struct {
	Students    StudentRepository
	Attendance  AttendanceRepository
	Assignments AssignmentRepository
	ReportCards ReportCardRepository
}
