// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package risk

import (
	"fmt"

	"github.com/MKhiriev/go-medcare/models"
)

const (
	DefaultMediumCut = 4
	DefaultHighCut   = 8
)

// Classifier assigns a severity band to a questionnaire score.
// A score at or above HighCut is High, at or above MediumCut is Medium and
// everything below is Low.
type Classifier struct {
	MediumCut int
	HighCut   int
}

// NewClassifier returns a classifier with the given cut points.
func NewClassifier(mediumCut, highCut int) (Classifier, error) {
	if mediumCut <= 0 || highCut <= mediumCut {
		return Classifier{}, fmt.Errorf("%w: medium=%d high=%d", ErrInvalidCutPoints, mediumCut, highCut)
	}
	return Classifier{MediumCut: mediumCut, HighCut: highCut}, nil
}

// DefaultClassifier uses the 4/8 cut points.
func DefaultClassifier() Classifier {
	return Classifier{MediumCut: DefaultMediumCut, HighCut: DefaultHighCut}
}

// Classify is monotonic non-decreasing in score.
func (c Classifier) Classify(score int) models.Label {
	switch {
	case score >= c.HighCut:
		return models.LabelHigh
	case score >= c.MediumCut:
		return models.LabelMedium
	default:
		return models.LabelLow
	}
}
