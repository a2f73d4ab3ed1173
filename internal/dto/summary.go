package dto

// AttendanceSummaryRow aggregates one student's lifetime attendance. The
// early-leave and inactive counts are computed but not part of the rendered
// email table.
type AttendanceSummaryRow struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	TodayStatus string `json:"todayStatus"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Late        int    `json:"late"`
	EarlyLeave  int    `json:"earlyLeave"`
	Inactive    int    `json:"inactive"`
}

// MarksSummaryRow is one (student, course, module) line in the marks email.
type MarksSummaryRow struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Course     string `json:"course"`
	Module     string `json:"module"`
	Assignment int    `json:"assignment"`
	Quiz       int    `json:"quiz"`
}

// RecipientOutcome reports the delivery result for one admin address.
type RecipientOutcome struct {
	Recipient string `json:"recipient"`
	Sent      bool   `json:"sent"`
	Error     string `json:"error,omitempty"`
}

// ShareResponse is returned once every dispatch has resolved.
type ShareResponse struct {
	Subject     string             `json:"subject"`
	Recipients  []RecipientOutcome `json:"recipients"`
	FailedCount int                `json:"failedCount"`
}
