package models

import "time"

// ConsentRecord is one entry of the append-only consent log.
type ConsentRecord struct {
	ID             int64     `json:"-"`
	PseudonymousID string    `json:"-"`
	Consent        bool      `json:"consent"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// TableName returns the name of the database table
// associated with the ConsentRecord model.
func (c ConsentRecord) TableName() string {
	return "consent"
}
