// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package behavior

//go:generate mockgen -source=model.go -destination=../mock/model_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
)

// Model is a behavioral classifier. Implementations must be safe for
// concurrent use.
type Model interface {
	// Features returns the feature names in the order Predict expects them.
	Features() []string
	// Predict returns the predicted class label for x.
	Predict(ctx context.Context, x []float64) (string, error)
	// PredictProba returns per-class probabilities for x. The slice may be
	// empty when the model does not expose probabilities.
	PredictProba(ctx context.Context, x []float64) ([]float64, error)
}

// Scorer is implemented by models that produce the label and the
// probabilities in one evaluation.
type Scorer interface {
	Score(ctx context.Context, x []float64) (string, []float64, error)
}

// Evaluate returns the label and probabilities of m for x, using a single
// Score call when m implements [Scorer].
func Evaluate(ctx context.Context, m Model, x []float64) (string, []float64, error) {
	if s, ok := m.(Scorer); ok {
		return s.Score(ctx, x)
	}

	label, err := m.Predict(ctx, x)
	if err != nil {
		return "", nil, err
	}
	probs, err := m.PredictProba(ctx, x)
	if err != nil {
		return "", nil, err
	}
	return label, probs, nil
}

// Load builds the configured model. A URL takes precedence over a file path.
// With neither configured, Load returns a nil Model and no error.
func Load(ctx context.Context, cfg config.Model, log *logger.Logger) (Model, error) {
	switch {
	case cfg.URL != "":
		m, err := NewRemoteModel(ctx, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("error initializing remote behavior model: %w", err)
		}
		log.Info().Str("url", cfg.URL).Int("features", len(m.Features())).Msg("remote behavior model connected")
		return m, nil
	case cfg.Path != "":
		m, err := LoadFileModel(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("error loading behavior model: %w", err)
		}
		log.Info().Str("path", cfg.Path).Strs("labels", m.Labels).Msg("behavior model loaded")
		return m, nil
	default:
		log.Warn().Msg("no behavior model configured, behavioral predictions are disabled")
		return nil, nil
	}
}

// AssembleFeatures builds a vector in the given order from named values.
// Missing names become 0.0. Numbers, numeric strings and booleans are
// accepted; anything else yields ErrFeature.
func AssembleFeatures(order []string, named map[string]any) ([]float64, error) {
	x := make([]float64, len(order))
	for i, name := range order {
		v, ok := named[name]
		if !ok {
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFeature, name, err)
		}
		x[i] = f
	}
	return x, nil
}

// CheckVector verifies that x has one finite value per model feature.
func CheckVector(m Model, x []float64) error {
	if want := len(m.Features()); len(x) != want {
		return fmt.Errorf("%w: expected %d features, got %d", ErrFeature, want, len(x))
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: feature %d is not finite", ErrFeature, i)
		}
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
