package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/corplearn/training-admin-api/internal/models"
)

// CompanyRepository reads tenant records. Companies are provisioned
// out-of-band, so there is no write path here.
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository constructs a CompanyRepository.
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindByCode fetches one company. Returns sql.ErrNoRows when absent.
func (r *CompanyRepository) FindByCode(ctx context.Context, code string) (*models.Company, error) {
	const query = `SELECT code, admin_emails, github_url, trainer_name, trainer_profile_url, created_at, updated_at
        FROM companies WHERE code = $1`
	var company models.Company
	if err := r.db.GetContext(ctx, &company, query, code); err != nil {
		return nil, err
	}
	return &company, nil
}

// Exists reports whether a company code is registered.
func (r *CompanyRepository) Exists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT 1 FROM companies WHERE code = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, code); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check company: %w", err)
	}
	return true, nil
}
