package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corplearn/training-admin-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func studentColumns() []string {
	return []string{"company_code", "student_id", "name", "email", "attendance", "marks", "created_at", "updated_at"}
}

func TestStudentRepositoryListByCompany(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows(studentColumns()).
		AddRow("GSK2025A", "Abhi_001", "Abhishek", "abhi@example.com",
			[]byte(`{"2025-01-10":"Present"}`), []byte(`{}`), time.Now(), time.Now())
	mock.ExpectQuery("SELECT company_code, student_id, name, email, attendance, marks, created_at, updated_at").
		WithArgs("GSK2025A").
		WillReturnRows(rows)

	students, err := repo.ListByCompany(context.Background(), "GSK2025A")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Abhi_001", students[0].StudentID)
	assert.Equal(t, models.AttendanceStatusPresent, students[0].Attendance["2025-01-10"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByIDNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT company_code, student_id, name, email, attendance, marks, created_at, updated_at").
		WithArgs("GSK2025A", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "GSK2025A", "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := &models.Student{
		CompanyCode: "GSK2025A",
		StudentID:   "Abhi_001",
		Name:        "Abhishek",
		Email:       "abhi@example.com",
		Attendance:  models.AttendanceMap{},
		Marks:       models.MarksMap{},
	}
	require.NoError(t, repo.Upsert(context.Background(), student))
	assert.False(t, student.CreatedAt.IsZero())
	assert.False(t, student.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteAbsentID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("DELETE FROM students").
		WithArgs("GSK2025A", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "GSK2025A", "ghost"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySetAttendanceDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students").
		WithArgs("GSK2025A", "Abhi_001", "2025-01-10", "Late Came", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetAttendanceDate(context.Background(), "GSK2025A", "Abhi_001", "2025-01-10", models.AttendanceStatusLateCame)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySetAttendanceDateUnknownStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students").
		WithArgs("GSK2025A", "ghost", "2025-01-10", "Present", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAttendanceDate(context.Background(), "GSK2025A", "ghost", "2025-01-10", models.AttendanceStatusPresent)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryReplaceMarks(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET marks").
		WithArgs("GSK2025A", "Abhi_001", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	marks := models.MarksMap{"Golang": {"Module 1": {Assignment: 90, Quiz: 85}}}
	require.NoError(t, repo.ReplaceMarks(context.Background(), "GSK2025A", "Abhi_001", marks))
	assert.NoError(t, mock.ExpectationsWereMet())
}
