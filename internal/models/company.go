package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Company is the tenant record. Companies are provisioned out-of-band; this
// API only reads them.
type Company struct {
	Code              string     `db:"code" json:"code"`
	AdminEmails       StringList `db:"admin_emails" json:"admin_emails"`
	GitHubURL         string     `db:"github_url" json:"github_url"`
	TrainerName       string     `db:"trainer_name" json:"trainer_name"`
	TrainerProfileURL string     `db:"trainer_profile_url" json:"trainer_profile_url"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// StringList is an ordered list of strings persisted as JSONB.
type StringList []string

// Value marshals the list to JSON for persistence.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the list.
func (l *StringList) Scan(value interface{}) error {
	data, err := jsonColumnBytes(value, "StringList")
	if err != nil {
		return err
	}
	if data == nil {
		*l = StringList{}
		return nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}
	return nil
}
