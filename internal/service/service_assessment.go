// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/metrics"
	"github.com/MKhiriev/go-medcare/internal/risk"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

type assessmentService struct {
	assessmentRepository store.AssessmentRepository
	classifier           risk.Classifier
	now                  func() time.Time
	logger               *logger.Logger
}

func NewAssessmentService(assessmentRepository store.AssessmentRepository, classifier risk.Classifier, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		assessmentRepository: assessmentRepository,
		classifier:           classifier,
		now:                  time.Now,
		logger:               logger,
	}
}

// SaveAssessment appends a questionnaire submission.
//
// The label comes from the request when present and must then be one of
// the persisted bands; otherwise the classifier derives it from the score.
// Missing answers are stored as an empty JSON array.
func (s *assessmentService) SaveAssessment(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	score := req.Score.Int()
	if score < 0 {
		return models.Assessment{}, fmt.Errorf("%w: score must be non-negative", ErrInvalidDataProvided)
	}

	label := req.Label
	switch {
	case strings.TrimSpace(string(label)) == "":
		label = s.classifier.Classify(score)
	case !label.IsValid():
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidLabel)
	}

	assessment := models.Assessment{
		PseudonymousID: resolvePseudonym(ctx, req.Identity, GuestAssessmentIdentity),
		Score:          score,
		Label:          label,
		Answers:        normalizeAnswers(req.Answers),
		RecordedAt:     req.When().Time,
	}
	if assessment.RecordedAt.IsZero() {
		assessment.RecordedAt = s.now().UTC()
	}

	saved, err := s.assessmentRepository.SaveAssessment(ctx, assessment)
	if err != nil {
		log.Err(err).Str("func", "*assessmentService.SaveAssessment").Msg("error saving assessment")
		return models.Assessment{}, fmt.Errorf("error saving assessment: %w", err)
	}

	metrics.ObserveLabel(metrics.SourceQuestionnaire, string(label))
	return saved, nil
}

// History returns the stored assessments of identifier, newest first.
func (s *assessmentService) History(ctx context.Context, identifier string) ([]models.Assessment, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrMissingIdentity
	}

	history, err := s.assessmentRepository.GetHistory(ctx, utils.Anonymize(identifier))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*assessmentService.History").Msg("error loading history")
		return nil, fmt.Errorf("error loading history: %w", err)
	}

	return history, nil
}

func normalizeAnswers(answers json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(answers)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.EmptyAnswers
	}
	return trimmed
}
