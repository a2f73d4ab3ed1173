package service

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	"github.com/corplearn/training-admin-api/pkg/config"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type noteStore interface {
	FindByID(ctx context.Context, companyCode, noteID string) (*models.Note, error)
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Viewer error texts shown inline in the note pane instead of failing the
// request.
const (
	noteInvalidURLMessage  = "Invalid or missing note URL."
	noteFetchFailedMessage = "Unable to load the note content."
)

// NoteService classifies a note's URL and, for plain links, fetches the
// body so the dashboard can render it inline.
type NoteService struct {
	notes    noteStore
	client   *http.Client
	maxBytes int64
	logger   *zap.Logger
}

// NewNoteService constructs the note viewer service.
func NewNoteService(notes noteStore, cfg config.NotesConfig, logger *zap.Logger) *NoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	return &NoteService{
		notes:    notes,
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// View resolves one note and returns its presentation payload. Google Docs
// links come back as embeddable preview URLs, PDFs and images as direct
// URLs, and everything else as fetched text. Classification and fetch
// failures surface as text content so the viewer always has something to
// show.
func (s *NoteService) View(ctx context.Context, companyCode, noteID string) (*dto.NoteContentResponse, error) {
	note, err := s.notes.FindByID(ctx, companyCode, noteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "note not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load note")
	}

	kind, viewURL, ok := ClassifyNoteURL(note.URL)
	if !ok {
		return &dto.NoteContentResponse{Kind: string(models.NoteKindText), Content: noteInvalidURLMessage}, nil
	}
	if kind != models.NoteKindText {
		return &dto.NoteContentResponse{Kind: string(kind), URL: viewURL}, nil
	}

	content, err := s.fetchText(ctx, viewURL)
	if err != nil {
		s.logger.Sugar().Warnw("note content fetch failed", "companyCode", companyCode, "noteId", noteID, "error", err)
		return &dto.NoteContentResponse{Kind: string(models.NoteKindText), Content: noteFetchFailedMessage}, nil
	}
	return &dto.NoteContentResponse{Kind: string(models.NoteKindText), Content: content}, nil
}

// ClassifyNoteURL decides how a note URL should be presented. Google Docs
// document links are rewritten from /edit to /preview so they embed
// cleanly. The extension checks are case-insensitive.
func ClassifyNoteURL(raw string) (models.NoteContentKind, string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", "", false
	}

	if parsed.Host == "docs.google.com" && strings.HasPrefix(parsed.Path, "/document/") {
		preview := raw
		if idx := strings.Index(preview, "/edit"); idx >= 0 {
			preview = preview[:idx] + "/preview"
		}
		return models.NoteKindGoogleDoc, preview, true
	}

	ext := strings.ToLower(path.Ext(parsed.Path))
	switch {
	case ext == ".pdf":
		return models.NoteKindPDF, raw, true
	case imageExtensions[ext]:
		return models.NoteKindImage, raw, true
	}
	return models.NoteKindText, raw, true
}

func (s *NoteService) fetchText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", appErrors.Clone(appErrors.ErrInternal, "unexpected status "+resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
