package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/growth-advisor/internal/types"
)

// PostgresRepository implements all four ports against the school database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Close closes the connection pool.
func (r *PostgresRepository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// GetProfile returns the student profile or ErrStudentNotFound.
func (r *PostgresRepository) GetProfile(ctx context.Context, studentID string) (*types.Student, error) {
	var s types.Student
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, class_id, class_name, section, interests, attendance_percent
		 FROM students WHERE id = $1`,
		studentID,
	).Scan(&s.ID, &s.Name, &s.ClassID, &s.ClassName, &s.Section, &s.Interests, &s.Attendance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student %s: %w", studentID, err)
	}
	return &s, nil
}

// GetAttendance returns the student's daily attendance entries, newest
// first. An unknown student yields an empty slice.
func (r *PostgresRepository) GetAttendance(ctx context.Context, studentID string) ([]types.DailyAttendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, date, status
		 FROM daily_attendance WHERE student_id = $1
		 ORDER BY date DESC, id DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for %s: %w", studentID, err)
	}
	defer rows.Close()

	var entries []types.DailyAttendance
	for rows.Next() {
		var e types.DailyAttendance
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Date, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return entries, nil
}

// GetAssignments returns all assignments for a class.
func (r *PostgresRepository) GetAssignments(ctx context.Context, classID string) ([]types.Assignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, title, subject, due_date, max_marks
		 FROM assignments WHERE class_id = $1
		 ORDER BY due_date DESC, id DESC`,
		classID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for class %s: %w", classID, err)
	}
	defer rows.Close()

	var assignments []types.Assignment
	for rows.Next() {
		var a types.Assignment
		if err := rows.Scan(&a.ID, &a.ClassID, &a.Title, &a.Subject, &a.DueDate, &a.MaxMarks); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignment rows: %w", err)
	}
	return assignments, nil
}

// GetSubmissions returns all of the student's assignment submissions.
func (r *PostgresRepository) GetSubmissions(ctx context.Context, studentID string) ([]types.AssignmentSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, assignment_id, student_id, submitted_at, grade, marks_obtained
		 FROM assignment_submissions WHERE student_id = $1`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions for %s: %w", studentID, err)
	}
	defer rows.Close()

	var submissions []types.AssignmentSubmission
	for rows.Next() {
		var s types.AssignmentSubmission
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt, &s.Grade, &s.MarksObtained); err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submission rows: %w", err)
	}
	return submissions, nil
}

// GetReportCards returns the student's report cards with subject rows,
// newest term first.
func (r *PostgresRepository) GetReportCards(ctx context.Context, studentID string) ([]types.ReportCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, term_name, issue_date, overall_grade, overall_percentage, teacher_comments
		 FROM report_cards WHERE student_id = $1
		 ORDER BY issue_date DESC, id DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report cards for %s: %w", studentID, err)
	}
	defer rows.Close()

	var cards []types.ReportCard
	for rows.Next() {
		var c types.ReportCard
		if err := rows.Scan(&c.ID, &c.StudentID, &c.TermName, &c.IssueDate,
			&c.OverallGrade, &c.OverallPercentage, &c.TeacherComments); err != nil {
			return nil, fmt.Errorf("failed to scan report card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report card rows: %w", err)
	}

	for i := range cards {
		subjects, err := r.getSubjectResults(ctx, cards[i].ID)
		if err != nil {
			return nil, err
		}
		cards[i].Subjects = subjects
	}
	return cards, nil
}

func (r *PostgresRepository) getSubjectResults(ctx context.Context, reportCardID string) ([]types.SubjectResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT subject_name, marks_obtained, max_marks, grade
		 FROM report_card_subjects WHERE report_card_id = $1
		 ORDER BY subject_name`,
		reportCardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects for report card %s: %w", reportCardID, err)
	}
	defer rows.Close()

	var subjects []types.SubjectResult
	for rows.Next() {
		var s types.SubjectResult
		if err := rows.Scan(&s.SubjectName, &s.MarksObtained, &s.MaxMarks, &s.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan subject row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subject rows: %w", err)
	}
	return subjects, nil
}
