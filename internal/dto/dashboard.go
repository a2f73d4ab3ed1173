package dto

// StudentDashboardResponse composes everything the read-only dashboard
// renders: profile, trainer context, attendance tags, marks rows, and the
// company's notes list.
type StudentDashboardResponse struct {
	CompanyCode string          `json:"companyCode"`
	StudentID   string          `json:"studentId"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Trainer     TrainerInfo     `json:"trainer"`
	Attendance  []AttendanceTag `json:"attendance"`
	Marks       []MarkRow       `json:"marks"`
	Notes       []NoteItem      `json:"notes"`
}

// TrainerInfo carries company-level trainer context. Empty when the company
// record is missing; its absence does not fail the dashboard.
type TrainerInfo struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl,omitempty"`
	GitHubURL  string `json:"githubUrl,omitempty"`
}

// AttendanceTag is one rendered attendance chip, newest first.
type AttendanceTag struct {
	Date     string `json:"date"`     // ISO date key
	Label    string `json:"label"`    // short display form, e.g. "10 Jan"
	Status   string `json:"status"`
	TagClass string `json:"tagClass"` // css class, e.g. "latecame"
}

// MarkRow is one flattened (course, module) marks line.
type MarkRow struct {
	Course     string `json:"course"`
	Module     string `json:"module"`
	Assignment int    `json:"assignment"`
	Quiz       int    `json:"quiz"`
}

// NoteItem is a listed note.
type NoteItem struct {
	NoteID string `json:"noteId"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
}

// NoteContentResponse is the classified note view payload. Exactly one of
// URL or Content is meaningful depending on Kind.
type NoteContentResponse struct {
	Kind    string `json:"kind"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"`
}
