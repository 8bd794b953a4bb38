// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/metrics"
	"github.com/MKhiriev/go-medcare/internal/risk"
	"github.com/MKhiriev/go-medcare/models"
)

type predictionService struct {
	// model is nil when no behavioral model is configured.
	model      behavior.Model
	classifier risk.Classifier
	logger     *logger.Logger
}

func NewPredictionService(model behavior.Model, classifier risk.Classifier, logger *logger.Logger) PredictionService {
	return &predictionService{
		model:      model,
		classifier: classifier,
		logger:     logger,
	}
}

func (s *predictionService) ModelLoaded() bool {
	return s.model != nil
}

// Predict runs the behavioral model alone.
//
// Returns behavior.ErrModelUnavailable when no model is loaded and
// behavior.ErrFeature for unusable features or a failed prediction.
func (s *predictionService) Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	if s.model == nil {
		return models.Prediction{}, behavior.ErrModelUnavailable
	}

	prediction, probs, err := s.runModel(ctx, req.Vector, req.Named)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*predictionService.Predict").Msg("behavior prediction failed")
		return models.Prediction{}, err
	}

	label := models.Label(prediction)
	if parsed, ok := models.ParseLabel(prediction); ok {
		label = parsed
	}
	metrics.ObserveLabel(metrics.SourceBehavior, string(label))

	return models.Prediction{
		Prediction:    prediction,
		Probabilities: probs,
		Suggestions:   risk.Suggestions(label),
	}, nil
}

// PredictFused classifies the questionnaire score and, when a model is
// loaded, the behavioral features, then fuses both labels. Model failures
// are logged and the behavioral side is treated as absent; this operation
// never fails on the model's account.
func (s *predictionService) PredictFused(ctx context.Context, req models.FusedRequest) (models.FusedPrediction, error) {
	log := logger.FromContext(ctx)

	questionnaire := s.classifier.Classify(req.QuestionnaireScore.Int())
	metrics.ObserveLabel(metrics.SourceQuestionnaire, string(questionnaire))

	var (
		behavioral *models.Label
		probs      = []float64{}
	)
	if s.model != nil {
		prediction, p, err := s.runModel(ctx, nil, req.BehaviorFeatures)
		if err != nil {
			log.Warn().Err(err).Msg("behavior model failed, fusing questionnaire label only")
		} else {
			l := models.Label(prediction)
			behavioral = &l
			probs = p
			metrics.ObserveLabel(metrics.SourceBehavior, prediction)
		}
	}

	final := risk.Fuse(questionnaire, behavioral)
	metrics.ObserveLabel(metrics.SourceFused, string(final))

	return models.FusedPrediction{
		Label:              final,
		QuestionnaireLabel: questionnaire,
		BehaviorLabel:      behavioral,
		BehaviorProbs:      probs,
		Explanation: models.Explanation{
			QuestionnaireLabel: questionnaire,
			BehaviorLabel:      behavioral,
			Method:             models.FusionMethod,
		},
		Suggestions: risk.Suggestions(final),
	}, nil
}

// runModel assembles the feature vector (unless one is given) and asks the
// model for a label and probabilities.
func (s *predictionService) runModel(ctx context.Context, vector []float64, named map[string]any) (string, []float64, error) {
	x := vector
	if x == nil {
		var err error
		if x, err = behavior.AssembleFeatures(s.model.Features(), named); err != nil {
			return "", nil, err
		}
	}
	if err := behavior.CheckVector(s.model, x); err != nil {
		return "", nil, err
	}

	prediction, probs, err := behavior.Evaluate(ctx, s.model, x)
	if err != nil {
		return "", nil, asFeatureError(err)
	}
	if probs == nil {
		probs = []float64{}
	}

	return prediction, probs, nil
}

// asFeatureError keeps the model's own classification and files anything
// else under behavior.ErrFeature.
func asFeatureError(err error) error {
	if errors.Is(err, behavior.ErrFeature) || errors.Is(err, behavior.ErrModelUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", behavior.ErrFeature, err)
}
