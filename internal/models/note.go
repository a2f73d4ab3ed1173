package models

import "time"

// Note is shared reading material for a company's students. Notes are
// populated out-of-band and read-only from this API.
type Note struct {
	CompanyCode string    `db:"company_code" json:"company_code"`
	NoteID      string    `db:"note_id" json:"note_id"`
	Title       string    `db:"title" json:"title"`
	URL         string    `db:"url" json:"url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// NoteContentKind classifies how a note URL should be presented.
type NoteContentKind string

const (
	NoteKindGoogleDoc NoteContentKind = "gdoc"
	NoteKindPDF       NoteContentKind = "pdf"
	NoteKindImage     NoteContentKind = "image"
	NoteKindText      NoteContentKind = "text"
)
