// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Assessment is a single stored questionnaire submission. Records are
// immutable once written and only removed by a per-user purge.
type Assessment struct {
	// ID is the auto-incrementing sequence assigned by storage.
	ID int64 `json:"id"`

	// PseudonymousID links the record to its owner. It is never exposed in
	// history responses.
	PseudonymousID string `json:"-"`

	// Score is the non-negative questionnaire total.
	Score int `json:"score"`

	// Label is the severity band; always one of [Labels].
	Label Label `json:"label"`

	// Answers is the raw questionnaire payload. The store treats it as
	// opaque JSON.
	Answers json.RawMessage `json:"answers"`

	// RecordedAt is when the submission was made.
	RecordedAt time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Assessment model.
func (a Assessment) TableName() string {
	return "assessments"
}

// EmptyAnswers is stored when a submission carries no answers.
var EmptyAnswers = json.RawMessage("[]")

// PurgeResult reports how many rows a per-user purge removed.
type PurgeResult struct {
	Assessments int64 `json:"assessments"`
	Consents    int64 `json:"consents"`
}
