package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/corplearn/training-admin-api/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByCompany returns every student of a company in creation order.
func (r *StudentRepository) ListByCompany(ctx context.Context, companyCode string) ([]models.Student, error) {
	const query = `SELECT company_code, student_id, name, email, attendance, marks, created_at, updated_at
        FROM students WHERE company_code = $1 ORDER BY created_at`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, companyCode); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches one student. Returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, companyCode, studentID string) (*models.Student, error) {
	const query = `SELECT company_code, student_id, name, email, attendance, marks, created_at, updated_at
        FROM students WHERE company_code = $1 AND student_id = $2`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, companyCode, studentID); err != nil {
		return nil, err
	}
	return &student, nil
}

// Upsert creates the record or replaces it wholesale, keyed by the
// caller-supplied student id.
func (r *StudentRepository) Upsert(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	const query = `INSERT INTO students (company_code, student_id, name, email, attendance, marks, created_at, updated_at)
        VALUES (:company_code, :student_id, :name, :email, :attendance, :marks, :created_at, :updated_at)
        ON CONFLICT (company_code, student_id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            attendance = EXCLUDED.attendance,
            marks = EXCLUDED.marks,
            updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}
	return nil
}

// Delete removes a student. Deleting an absent id is not an error.
func (r *StudentRepository) Delete(ctx context.Context, companyCode, studentID string) error {
	const query = `DELETE FROM students WHERE company_code = $1 AND student_id = $2`
	if _, err := r.db.ExecContext(ctx, query, companyCode, studentID); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// SetAttendanceDate writes a single date key into the attendance map.
func (r *StudentRepository) SetAttendanceDate(ctx context.Context, companyCode, studentID, date string, status models.AttendanceStatus) error {
	const query = `UPDATE students
        SET attendance = jsonb_set(COALESCE(attendance, '{}'::jsonb), ARRAY[$3], to_jsonb($4::text), true),
            updated_at = $5
        WHERE company_code = $1 AND student_id = $2`
	res, err := r.db.ExecContext(ctx, query, companyCode, studentID, date, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set attendance: student %s not found", studentID)
	}
	return nil
}

// ReplaceMarks overwrites the student's whole marks map.
func (r *StudentRepository) ReplaceMarks(ctx context.Context, companyCode, studentID string, marks models.MarksMap) error {
	const query = `UPDATE students SET marks = $3, updated_at = $4 WHERE company_code = $1 AND student_id = $2`
	res, err := r.db.ExecContext(ctx, query, companyCode, studentID, marks, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("replace marks: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("replace marks: student %s not found", studentID)
	}
	return nil
}
