package repository

import (
	"context"
	"sync"

	"github.com/jonathan/growth-advisor/internal/types"
)

// MemoryRepository is a seedable in-memory implementation of all four
// ports, used in tests and demo runs. Queries return copies so callers
// never observe shared mutable state.
type MemoryRepository struct {
	mu          sync.RWMutex
	students    map[string]types.Student
	attendance  map[string][]types.DailyAttendance      // studentID -> entries
	assignments map[string][]types.Assignment           // classID -> assignments
	submissions map[string][]types.AssignmentSubmission // studentID -> submissions
	reportCards map[string][]types.ReportCard           // studentID -> cards
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		students:    make(map[string]types.Student),
		attendance:  make(map[string][]types.DailyAttendance),
		assignments: make(map[string][]types.Assignment),
		submissions: make(map[string][]types.AssignmentSubmission),
		reportCards: make(map[string][]types.ReportCard),
	}
}

// AddStudent seeds a student profile.
func (r *MemoryRepository) AddStudent(s types.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[s.ID] = s
}

// AddAttendance seeds daily attendance entries.
func (r *MemoryRepository) AddAttendance(entries ...types.DailyAttendance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.attendance[e.StudentID] = append(r.attendance[e.StudentID], e)
	}
}

// AddAssignments seeds class assignments.
func (r *MemoryRepository) AddAssignments(assignments ...types.Assignment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range assignments {
		r.assignments[a.ClassID] = append(r.assignments[a.ClassID], a)
	}
}

// AddSubmissions seeds assignment submissions.
func (r *MemoryRepository) AddSubmissions(submissions ...types.AssignmentSubmission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range submissions {
		r.submissions[s.StudentID] = append(r.submissions[s.StudentID], s)
	}
}

// AddReportCards seeds report cards.
func (r *MemoryRepository) AddReportCards(cards ...types.ReportCard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cards {
		r.reportCards[c.StudentID] = append(r.reportCards[c.StudentID], c)
	}
}

// GetProfile returns the student profile or ErrStudentNotFound.
func (r *MemoryRepository) GetProfile(_ context.Context, studentID string) (*types.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[studentID]
	if !ok {
		return nil, ErrStudentNotFound
	}
	out := s
	out.Interests = append([]string(nil), s.Interests...)
	return &out, nil
}

// GetAttendance returns the student's attendance entries.
func (r *MemoryRepository) GetAttendance(_ context.Context, studentID string) ([]types.DailyAttendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]types.DailyAttendance(nil), r.attendance[studentID]...), nil
}

// GetAssignments returns the class's assignments.
func (r *MemoryRepository) GetAssignments(_ context.Context, classID string) ([]types.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]types.Assignment(nil), r.assignments[classID]...), nil
}

// GetSubmissions returns the student's submissions.
func (r *MemoryRepository) GetSubmissions(_ context.Context, studentID string) ([]types.AssignmentSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]types.AssignmentSubmission(nil), r.submissions[studentID]...), nil
}

// GetReportCards returns the student's report cards.
func (r *MemoryRepository) GetReportCards(_ context.Context, studentID string) ([]types.ReportCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]types.ReportCard(nil), r.reportCards[studentID]...), nil
}

// Ports returns the repository bundled as the four aggregator ports.
func (r *MemoryRepository) Ports() Repositories {
	return Repositories{
		Students:    r,
		Attendance:  r,
		Assignments: r,
		ReportCards: r,
	}
}
