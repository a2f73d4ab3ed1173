package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRepositoryFindByCode(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCompanyRepository(db)

	rows := sqlmock.NewRows([]string{"code", "admin_emails", "github_url", "trainer_name", "trainer_profile_url", "created_at", "updated_at"}).
		AddRow("GSK2025A", []byte(`["admin@example.com"]`), "https://github.com/trainer", "Trainer", "https://example.com/trainer", time.Now(), time.Now())
	mock.ExpectQuery("SELECT code, admin_emails, github_url, trainer_name, trainer_profile_url").
		WithArgs("GSK2025A").
		WillReturnRows(rows)

	company, err := repo.FindByCode(context.Background(), "GSK2025A")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, []string(company.AdminEmails))
	assert.Equal(t, "Trainer", company.TrainerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepositoryExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCompanyRepository(db)

	mock.ExpectQuery("SELECT 1 FROM companies").
		WithArgs("GSK2025A").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "GSK2025A")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM companies").
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.Exists(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
