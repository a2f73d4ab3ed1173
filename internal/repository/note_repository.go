package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/corplearn/training-admin-api/internal/models"
)

// NoteRepository reads the shared notes collection. Notes are populated
// out-of-band; the dashboard only lists and views them.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs a NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// ListByCompany returns every note of a company in creation order.
func (r *NoteRepository) ListByCompany(ctx context.Context, companyCode string) ([]models.Note, error) {
	const query = `SELECT company_code, note_id, title, url, created_at
        FROM notes WHERE company_code = $1 ORDER BY created_at`
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, companyCode); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// FindByID fetches one note. Returns sql.ErrNoRows when absent.
func (r *NoteRepository) FindByID(ctx context.Context, companyCode, noteID string) (*models.Note, error) {
	const query = `SELECT company_code, note_id, title, url, created_at
        FROM notes WHERE company_code = $1 AND note_id = $2`
	var note models.Note
	if err := r.db.GetContext(ctx, &note, query, companyCode, noteID); err != nil {
		return nil, err
	}
	return &note, nil
}
