package service

import (
	"context"
	"database/sql"
	"fmt"
	"html/template"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/dto"
	"github.com/corplearn/training-admin-api/internal/models"
	appErrors "github.com/corplearn/training-admin-api/pkg/errors"
	"github.com/corplearn/training-admin-api/pkg/export"
	"github.com/corplearn/training-admin-api/pkg/mailer"
)

type summaryCompanyStore interface {
	FindByCode(ctx context.Context, code string) (*models.Company, error)
}

type summaryStudentStore interface {
	ListByCompany(ctx context.Context, companyCode string) ([]models.Student, error)
}

// SummaryService aggregates attendance and marks into HTML tables and mails
// them to the company's admins. Unlike the old UI, which reported success
// the moment dispatch calls were issued, Share* waits for every delivery
// and returns a per-recipient outcome list.
type SummaryService struct {
	companies summaryCompanyStore
	students  summaryStudentStore
	mail      mailer.Mailer
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewSummaryService constructs the summary service.
func NewSummaryService(companies summaryCompanyStore, students summaryStudentStore, mail mailer.Mailer, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		companies: companies,
		students:  students,
		mail:      mail,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
		now:       time.Now,
	}
}

var attendanceEmailTmpl = template.Must(template.New("attendance_email").Parse(`<div style="font-family: Arial, sans-serif; font-size: 14px;">
<p>Hello Admin,</p>
<p>Here is the <strong>student attendance summary</strong> for <strong>{{.CompanyCode}}</strong> on <strong>{{.Today}}</strong>:</p>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse: collapse; width: 100%; font-family: Arial, sans-serif;">
<thead><tr style="background-color: #f2f2f2;">
<th>#</th><th>Name</th><th>Status on {{.Today}}</th><th>Days Present</th><th>Days Absent</th><th>Days Late</th>
</tr></thead>
<tbody>{{range .Rows}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.TodayStatus}}</td><td>{{.Present}}</td><td>{{.Absent}}</td><td>{{.Late}}</td></tr>{{end}}</tbody>
</table>
<p>Regards,<br/>Team</p>
</div>`))

var marksEmailTmpl = template.Must(template.New("marks_email").Parse(`<div style="font-family: Arial, sans-serif; font-size: 14px;">
<p>Hello Admin,</p>
<p>Here is the <strong>student module marks summary</strong> for <strong>{{.CompanyCode}}</strong>:</p>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse: collapse; width: 100%; font-family: Arial, sans-serif;">
<thead><tr style="background-color: #f2f2f2;">
<th>#</th><th>Name</th><th>Course</th><th>Module</th><th>Assignment</th><th>Quiz</th>
</tr></thead>
<tbody>{{range .Rows}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.Course}}</td><td>{{.Module}}</td><td>{{.Assignment}}</td><td>{{.Quiz}}</td></tr>{{end}}</tbody>
</table>
<p>Regards,<br/>Team</p>
</div>`))

// AttendanceRows counts each student's lifetime statuses and reads out the
// status for today by direct key lookup ("N/A" when absent). EarlyLeave and
// Inactive are counted here even though the email table never shows them.
func (s *SummaryService) AttendanceRows(students []models.Student, today string) []dto.AttendanceSummaryRow {
	rows := make([]dto.AttendanceSummaryRow, 0, len(students))
	for i, student := range students {
		row := dto.AttendanceSummaryRow{Index: i + 1, Name: displayName(student.Name), TodayStatus: "N/A"}
		for _, status := range student.Attendance {
			switch status {
			case models.AttendanceStatusPresent:
				row.Present++
			case models.AttendanceStatusAbsent:
				row.Absent++
			case models.AttendanceStatusLateCame:
				row.Late++
			case models.AttendanceStatusEarlyLeave:
				row.EarlyLeave++
			case models.AttendanceStatusInactive:
				row.Inactive++
			}
		}
		if status, ok := student.Attendance[today]; ok {
			row.TodayStatus = string(status)
		}
		rows = append(rows, row)
	}
	return rows
}

// MarksRows emits one row per module present in each student's marks map.
// Students with no marks contribute nothing, and the outer index keeps its
// position in the roster rather than renumbering around them.
func (s *SummaryService) MarksRows(students []models.Student) []dto.MarksSummaryRow {
	rows := []dto.MarksSummaryRow{}
	for i, student := range students {
		courses := make([]string, 0, len(student.Marks))
		for course := range student.Marks {
			courses = append(courses, course)
		}
		sort.Strings(courses)
		for _, course := range courses {
			moduleNames := make([]string, 0, len(student.Marks[course]))
			for name := range student.Marks[course] {
				moduleNames = append(moduleNames, name)
			}
			sort.Strings(moduleNames)
			for _, name := range moduleNames {
				entry := student.Marks[course][name]
				rows = append(rows, dto.MarksSummaryRow{
					Index:      i + 1,
					Name:       displayName(student.Name),
					Course:     course,
					Module:     name,
					Assignment: entry.Assignment.Int(),
					Quiz:       entry.Quiz.Int(),
				})
			}
		}
	}
	return rows
}

// ShareAttendance mails the attendance summary to every admin address and
// reports the outcome per recipient.
func (s *SummaryService) ShareAttendance(ctx context.Context, companyCode string) (*dto.ShareResponse, error) {
	company, students, err := s.load(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	today := s.today()
	html, err := renderTemplate(attendanceEmailTmpl, map[string]interface{}{
		"CompanyCode": companyCode,
		"Today":       today,
		"Rows":        s.AttendanceRows(students, today),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render summary")
	}
	subject := fmt.Sprintf("Attendance summary for %s (%s)", companyCode, today)
	return s.dispatch(ctx, subject, html, company.AdminEmails), nil
}

// ShareMarks mails the module marks summary to every admin address and
// reports the outcome per recipient.
func (s *SummaryService) ShareMarks(ctx context.Context, companyCode string) (*dto.ShareResponse, error) {
	company, students, err := s.load(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	html, err := renderTemplate(marksEmailTmpl, map[string]interface{}{
		"CompanyCode": companyCode,
		"Rows":        s.MarksRows(students),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render summary")
	}
	subject := fmt.Sprintf("Module marks summary for %s", companyCode)
	return s.dispatch(ctx, subject, html, company.AdminEmails), nil
}

// PreviewAttendance renders the attendance summary HTML without sending.
func (s *SummaryService) PreviewAttendance(ctx context.Context, companyCode string) (string, error) {
	_, students, err := s.load(ctx, companyCode)
	if err != nil {
		return "", err
	}
	today := s.today()
	html, err := renderTemplate(attendanceEmailTmpl, map[string]interface{}{
		"CompanyCode": companyCode,
		"Today":       today,
		"Rows":        s.AttendanceRows(students, today),
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render summary")
	}
	return html, nil
}

// PreviewMarks renders the marks summary HTML without sending.
func (s *SummaryService) PreviewMarks(ctx context.Context, companyCode string) (string, error) {
	_, students, err := s.load(ctx, companyCode)
	if err != nil {
		return "", err
	}
	html, err := renderTemplate(marksEmailTmpl, map[string]interface{}{
		"CompanyCode": companyCode,
		"Rows":        s.MarksRows(students),
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render summary")
	}
	return html, nil
}

// ExportAttendance renders the attendance summary as a CSV or PDF download.
func (s *SummaryService) ExportAttendance(ctx context.Context, companyCode, format string) ([]byte, string, error) {
	_, students, err := s.load(ctx, companyCode)
	if err != nil {
		return nil, "", err
	}
	today := s.today()
	rows := s.AttendanceRows(students, today)
	data := export.Dataset{
		Headers: []string{"#", "Name", "Status " + today, "Present", "Absent", "Late"},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"#":              strconv.Itoa(row.Index),
			"Name":           row.Name,
			"Status " + today: row.TodayStatus,
			"Present":        strconv.Itoa(row.Present),
			"Absent":         strconv.Itoa(row.Absent),
			"Late":           strconv.Itoa(row.Late),
		})
	}
	return s.render(data, format, "Attendance summary "+companyCode)
}

// ExportMarks renders the marks summary as a CSV or PDF download.
func (s *SummaryService) ExportMarks(ctx context.Context, companyCode, format string) ([]byte, string, error) {
	_, students, err := s.load(ctx, companyCode)
	if err != nil {
		return nil, "", err
	}
	rows := s.MarksRows(students)
	data := export.Dataset{
		Headers: []string{"#", "Name", "Course", "Module", "Assignment", "Quiz"},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"#":          strconv.Itoa(row.Index),
			"Name":       row.Name,
			"Course":     row.Course,
			"Module":     row.Module,
			"Assignment": strconv.Itoa(row.Assignment),
			"Quiz":       strconv.Itoa(row.Quiz),
		})
	}
	return s.render(data, format, "Module marks summary "+companyCode)
}

func (s *SummaryService) render(data export.Dataset, format, title string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		out, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return out, "text/csv", nil
	case "pdf":
		out, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return out, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func (s *SummaryService) load(ctx context.Context, companyCode string) (*models.Company, []models.Student, error) {
	company, err := s.companies.FindByCode(ctx, companyCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "invalid company code")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load company")
	}
	students, err := s.students.ListByCompany(ctx, companyCode)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	return company, students, nil
}

// dispatch sends one message per admin concurrently and waits for all of
// them before reporting.
func (s *SummaryService) dispatch(ctx context.Context, subject, html string, recipients []string) *dto.ShareResponse {
	outcomes := make([]dto.RecipientOutcome, len(recipients))
	var wg sync.WaitGroup
	for i, recipient := range recipients {
		wg.Add(1)
		go func(i int, recipient string) {
			defer wg.Done()
			err := s.mail.Send(ctx, mailer.Message{
				To:          mail.Address{Address: recipient},
				Subject:     subject,
				HTMLContent: html,
			})
			if err != nil {
				s.logger.Sugar().Errorw("summary email failed", "recipient", recipient, "error", err)
				outcomes[i] = dto.RecipientOutcome{Recipient: recipient, Sent: false, Error: err.Error()}
				return
			}
			s.logger.Sugar().Infow("summary email sent", "recipient", recipient)
			outcomes[i] = dto.RecipientOutcome{Recipient: recipient, Sent: true}
		}(i, recipient)
	}
	wg.Wait()

	failed := 0
	for _, outcome := range outcomes {
		if !outcome.Sent {
			failed++
		}
	}
	return &dto.ShareResponse{Subject: subject, Recipients: outcomes, FailedCount: failed}
}

func (s *SummaryService) today() string {
	return s.now().Format("2006-01-02")
}

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "N/A"
	}
	return name
}
