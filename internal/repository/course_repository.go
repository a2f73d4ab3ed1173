package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/corplearn/training-admin-api/internal/models"
)

// CourseRepository manages courses and their named catalog modules.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListCourses returns a company's courses in creation order.
func (r *CourseRepository) ListCourses(ctx context.Context, companyCode string) ([]models.Course, error) {
	const query = `SELECT company_code, course_id, created_at FROM courses
        WHERE company_code = $1 ORDER BY created_at`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, companyCode); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// CourseExists reports whether the course id is already taken.
func (r *CourseRepository) CourseExists(ctx context.Context, companyCode, courseID string) (bool, error) {
	const query = `SELECT 1 FROM courses WHERE company_code = $1 AND course_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, companyCode, courseID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course: %w", err)
	}
	return true, nil
}

// CreateCourse inserts a new course. Courses are never updated or deleted.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (company_code, course_id, created_at)
        VALUES (:company_code, :course_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// ListModules returns the named modules of one course.
func (r *CourseRepository) ListModules(ctx context.Context, companyCode, courseID string) ([]models.CatalogModule, error) {
	const query = `SELECT company_code, course_id, module_id, name, start_date, end_date, description, status, created_at, updated_at
        FROM course_modules WHERE company_code = $1 AND course_id = $2 ORDER BY created_at`
	var modules []models.CatalogModule
	if err := r.db.SelectContext(ctx, &modules, query, companyCode, courseID); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

// FindModule fetches one module. Returns sql.ErrNoRows when absent.
func (r *CourseRepository) FindModule(ctx context.Context, companyCode, courseID, moduleID string) (*models.CatalogModule, error) {
	const query = `SELECT company_code, course_id, module_id, name, start_date, end_date, description, status, created_at, updated_at
        FROM course_modules WHERE company_code = $1 AND course_id = $2 AND module_id = $3`
	var module models.CatalogModule
	if err := r.db.GetContext(ctx, &module, query, companyCode, courseID, moduleID); err != nil {
		return nil, err
	}
	return &module, nil
}

// ModuleExists reports whether a module id is already taken within a course.
func (r *CourseRepository) ModuleExists(ctx context.Context, companyCode, courseID, moduleID string) (bool, error) {
	const query = `SELECT 1 FROM course_modules WHERE company_code = $1 AND course_id = $2 AND module_id = $3 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, companyCode, courseID, moduleID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check module: %w", err)
	}
	return true, nil
}

// UpsertModule creates or unconditionally replaces a module document.
func (r *CourseRepository) UpsertModule(ctx context.Context, module *models.CatalogModule) error {
	now := time.Now().UTC()
	if module.CreatedAt.IsZero() {
		module.CreatedAt = now
	}
	module.UpdatedAt = now
	const query = `INSERT INTO course_modules (company_code, course_id, module_id, name, start_date, end_date, description, status, created_at, updated_at)
        VALUES (:company_code, :course_id, :module_id, :name, :start_date, :end_date, :description, :status, :created_at, :updated_at)
        ON CONFLICT (company_code, course_id, module_id) DO UPDATE SET
            name = EXCLUDED.name,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            description = EXCLUDED.description,
            status = EXCLUDED.status,
            updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, module); err != nil {
		return fmt.Errorf("upsert module: %w", err)
	}
	return nil
}

// DeleteModule removes a module document.
func (r *CourseRepository) DeleteModule(ctx context.Context, companyCode, courseID, moduleID string) error {
	const query = `DELETE FROM course_modules WHERE company_code = $1 AND course_id = $2 AND module_id = $3`
	if _, err := r.db.ExecContext(ctx, query, companyCode, courseID, moduleID); err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	return nil
}
