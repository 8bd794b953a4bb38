// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Label is a severity category produced by the risk classifier.
//
// The stored set is ordered: [LabelLow] < [LabelMedium] < [LabelHigh].
// [LabelUnknown] is a sentinel produced only by fusion when neither the
// questionnaire nor the behavioral model supplied a label; it is never
// persisted.
type Label string

const (
	LabelLow     Label = "Low"
	LabelMedium  Label = "Medium"
	LabelHigh    Label = "High"
	LabelUnknown Label = "Unknown"
)

// Labels lists the persisted severity bands from lowest to highest.
var Labels = []Label{LabelLow, LabelMedium, LabelHigh}

// legacyLabels maps vocabulary used by earlier questionnaire revisions onto
// the canonical bands.
var legacyLabels = map[string]Label{
	"low":      LabelLow,
	"mild":     LabelLow,
	"medium":   LabelMedium,
	"moderate": LabelMedium,
	"high":     LabelHigh,
	"severe":   LabelHigh,
}

// ParseLabel normalises s into one of the persisted bands. Matching is
// case-insensitive and accepts the Mild/Moderate/Severe vocabulary.
// The second return value is false when s is not a known band.
func ParseLabel(s string) (Label, bool) {
	l, ok := legacyLabels[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// Severity returns the rank of the label: 0 for Low, 2 for High and -1 for
// Unknown or any value outside the persisted set.
func (l Label) Severity() int {
	for i, band := range Labels {
		if l == band {
			return i
		}
	}
	return -1
}

// IsValid reports whether l is one of the persisted bands.
func (l Label) IsValid() bool {
	return l.Severity() >= 0
}

func (l Label) String() string {
	return string(l)
}

// UnmarshalJSON accepts any casing and the legacy vocabulary. Unrecognised
// values are kept verbatim so validation can reject them with a clear error.
func (l *Label) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if parsed, ok := ParseLabel(s); ok {
		*l = parsed
		return nil
	}

	*l = Label(s)
	return nil
}
