package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Student is a registered trainee scoped to a company.
type Student struct {
	CompanyCode string        `db:"company_code" json:"company_code"`
	StudentID   string        `db:"student_id" json:"student_id"`
	Name        string        `db:"name" json:"name"`
	Email       string        `db:"email" json:"email"`
	Attendance  AttendanceMap `db:"attendance" json:"attendance"`
	Marks       MarksMap      `db:"marks" json:"marks"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// AttendanceMap maps an ISO date string (YYYY-MM-DD) to a status. Persisted
// as a JSONB column.
type AttendanceMap map[string]AttendanceStatus

// Value marshals the map to JSON for persistence.
func (m AttendanceMap) Value() (driver.Value, error) {
	if m == nil {
		m = AttendanceMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal attendance map: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the map.
func (m *AttendanceMap) Scan(value interface{}) error {
	data, err := jsonColumnBytes(value, "AttendanceMap")
	if err != nil {
		return err
	}
	if data == nil {
		*m = AttendanceMap{}
		return nil
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal attendance map: %w", err)
	}
	return nil
}

// MarksMap nests course name -> module name -> scores. Persisted as JSONB.
type MarksMap map[string]ModuleMarks

// ModuleMarks maps a module name to its recorded scores.
type ModuleMarks map[string]MarkEntry

// MarkEntry carries the two recorded score fields for one module.
type MarkEntry struct {
	Assignment Score `json:"assignment"`
	Quiz       Score `json:"quiz"`
}

// Value marshals the map to JSON for persistence.
func (m MarksMap) Value() (driver.Value, error) {
	if m == nil {
		m = MarksMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal marks map: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the map.
func (m *MarksMap) Scan(value interface{}) error {
	data, err := jsonColumnBytes(value, "MarksMap")
	if err != nil {
		return err
	}
	if data == nil {
		*m = MarksMap{}
		return nil
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal marks map: %w", err)
	}
	return nil
}

// Score is a non-negative integer mark that tolerates free-text input.
// JSON numbers, numeric strings, empty strings, and nulls all decode; any
// unparseable value coerces to 0 at the schema boundary. It always encodes
// as a plain number.
type Score int

// UnmarshalJSON coerces strings and numbers, defaulting to 0 on parse failure.
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = 0
		return nil
	}
	raw := string(data)
	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = 0
			return nil
		}
		raw = str
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*s = 0
		return nil
	}
	*s = Score(n)
	return nil
}

// Int returns the score as a plain int.
func (s Score) Int() int {
	return int(s)
}

func jsonColumnBytes(value interface{}, kind string) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", value, kind)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
