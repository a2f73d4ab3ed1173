package models

import "strings"

// AttendanceStatus represents the status for a student on a single date.
type AttendanceStatus string

const (
	AttendanceStatusPresent    AttendanceStatus = "Present"
	AttendanceStatusAbsent     AttendanceStatus = "Absent"
	AttendanceStatusLateCame   AttendanceStatus = "Late Came"
	AttendanceStatusEarlyLeave AttendanceStatus = "Early Leave"
	AttendanceStatusInactive   AttendanceStatus = "Inactive"
)

// attendanceCycle is the fixed toggle order used by the attendance editor.
var attendanceCycle = []AttendanceStatus{
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusLateCame,
	AttendanceStatusEarlyLeave,
	AttendanceStatusInactive,
}

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLateCame,
		AttendanceStatusEarlyLeave, AttendanceStatusInactive:
		return true
	default:
		return false
	}
}

// Next advances one step through the five-status cycle. An unknown status
// restarts the cycle at Present, matching the editor's toggle behaviour.
func (s AttendanceStatus) Next() AttendanceStatus {
	for i, status := range attendanceCycle {
		if status == s {
			return attendanceCycle[(i+1)%len(attendanceCycle)]
		}
	}
	return AttendanceStatusPresent
}

// TagClass derives the dashboard tag CSS class: lower-cased with whitespace
// stripped ("Late Came" -> "latecame").
func (s AttendanceStatus) TagClass() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "")
}
