package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corplearn/training-admin-api/internal/models"
)

func TestCourseRepositoryListCourses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"company_code", "course_id", "created_at"}).
		AddRow("GSK2025A", "Golang", time.Now()).
		AddRow("GSK2025A", "React", time.Now())
	mock.ExpectQuery("SELECT company_code, course_id, created_at FROM courses").
		WithArgs("GSK2025A").
		WillReturnRows(rows)

	courses, err := repo.ListCourses(context.Background(), "GSK2025A")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Golang", courses[0].CourseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCourseExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT 1 FROM courses").
		WithArgs("GSK2025A", "Golang").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.CourseExists(context.Background(), "GSK2025A", "Golang")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM courses").
		WithArgs("GSK2025A", "Rust").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.CourseExists(context.Background(), "GSK2025A", "Rust")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreateCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").
		WillReturnResult(sqlmock.NewResult(0, 1))

	course := &models.Course{CompanyCode: "GSK2025A", CourseID: "Golang"}
	require.NoError(t, repo.CreateCourse(context.Background(), course))
	assert.False(t, course.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryUpsertModule(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO course_modules").
		WillReturnResult(sqlmock.NewResult(0, 1))

	module := &models.CatalogModule{
		CompanyCode: "GSK2025A",
		CourseID:    "Golang",
		ModuleID:    "concurrency",
		Name:        "Concurrency",
		StartDate:   "2025-02-01",
		EndDate:     "2025-02-14",
		Status:      models.ModuleStatusInProgress,
	}
	require.NoError(t, repo.UpsertModule(context.Background(), module))
	assert.False(t, module.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDeleteModule(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("DELETE FROM course_modules").
		WithArgs("GSK2025A", "Golang", "concurrency").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteModule(context.Background(), "GSK2025A", "Golang", "concurrency"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
