package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
)

type dashboardStudentStore interface {
	FindByID(ctx context.Context, companyCode, studentID string) (*models.Student, error)
}

type dashboardCompanyStore interface {
	FindByCode(ctx context.Context, code string) (*models.Company, error)
}

type dashboardNoteStore interface {
	ListByCompany(ctx context.Context, companyCode string) ([]models.Note, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Invalidate(ctx context.Context, key string) error
}

// DashboardService composes the read-only student view: profile, trainer
// context, attendance tags, flattened marks, and the company's notes. A
// missing company or a notes read failure degrades to empty sections; only
// a missing student fails the request.
type DashboardService struct {
	students  dashboardStudentStore
	companies dashboardCompanyStore
	notes     dashboardNoteStore
	cache     dashboardCache
	logger    *zap.Logger
}

// NewDashboardService constructs the dashboard service. cache may be nil,
// in which case every request recomputes the payload.
func NewDashboardService(students dashboardStudentStore, companies dashboardCompanyStore, notes dashboardNoteStore, cache dashboardCache, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		students:  students,
		companies: companies,
		notes:     notes,
		cache:     cache,
		logger:    logger,
	}
}

// Load returns the composed dashboard for one student. The second return
// value reports whether the payload came from cache.
func (s *DashboardService) Load(ctx context.Context, companyCode, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	key := dashboardKey(companyCode, studentID)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached dto.StudentDashboardResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, true, nil
			}
			// Unreadable entries are dropped so the next hit repopulates.
			_ = s.cache.Invalidate(ctx, key)
		}
	}

	student, err := s.students.FindByID(ctx, companyCode, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	resp := &dto.StudentDashboardResponse{
		CompanyCode: companyCode,
		StudentID:   student.StudentID,
		Name:        student.Name,
		Email:       student.Email,
		Attendance:  attendanceTags(student.Attendance),
		Marks:       markRows(student.Marks),
		Notes:       []dto.NoteItem{},
	}

	company, err := s.companies.FindByCode(ctx, companyCode)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Sugar().Warnw("dashboard company lookup failed", "companyCode", companyCode, "error", err)
		}
	} else {
		resp.Trainer = dto.TrainerInfo{
			Name:       company.TrainerName,
			ProfileURL: company.TrainerProfileURL,
			GitHubURL:  company.GitHubURL,
		}
	}

	notes, err := s.notes.ListByCompany(ctx, companyCode)
	if err != nil {
		s.logger.Sugar().Warnw("dashboard notes lookup failed", "companyCode", companyCode, "error", err)
	} else {
		for _, note := range notes {
			resp.Notes = append(resp.Notes, dto.NoteItem{NoteID: note.NoteID, Title: note.Title, URL: note.URL})
		}
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, string(raw)); err != nil {
				s.logger.Sugar().Warnw("dashboard cache write failed", "key", key, "error", err)
			}
		}
	}
	return resp, false, nil
}

// Evict drops the cached dashboard for one student. Called after writes so
// the student does not see stale attendance or marks for a full TTL.
func (s *DashboardService) Evict(ctx context.Context, companyCode, studentID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardKey(companyCode, studentID)); err != nil {
		s.logger.Sugar().Warnw("dashboard cache eviction failed", "companyCode", companyCode, "studentId", studentID, "error", err)
	}
}

func dashboardKey(companyCode, studentID string) string {
	return "dashboard:" + companyCode + ":" + studentID
}

// attendanceTags renders the attendance map newest first. Keys that do not
// parse as dates keep their raw text as the label and sort lexically among
// themselves.
func attendanceTags(attendance models.AttendanceMap) []dto.AttendanceTag {
	dates := make([]string, 0, len(attendance))
	for date := range attendance {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	tags := make([]dto.AttendanceTag, 0, len(dates))
	for _, date := range dates {
		status := attendance[date]
		label := date
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			label = parsed.Format("2 Jan")
		}
		tags = append(tags, dto.AttendanceTag{
			Date:     date,
			Label:    label,
			Status:   string(status),
			TagClass: status.TagClass(),
		})
	}
	return tags
}

// markRows flattens the nested marks map into (course, module) rows in a
// deterministic order.
func markRows(marks models.MarksMap) []dto.MarkRow {
	rows := make([]dto.MarkRow, 0, len(marks))
	courses := make([]string, 0, len(marks))
	for course := range marks {
		courses = append(courses, course)
	}
	sort.Strings(courses)
	for _, course := range courses {
		moduleNames := make([]string, 0, len(marks[course]))
		for name := range marks[course] {
			moduleNames = append(moduleNames, name)
		}
		sort.Strings(moduleNames)
		for _, name := range moduleNames {
			entry := marks[course][name]
			rows = append(rows, dto.MarkRow{
				Course:     course,
				Module:     name,
				Assignment: entry.Assignment.Int(),
				Quiz:       entry.Quiz.Int(),
			})
		}
	}
	return rows
}
