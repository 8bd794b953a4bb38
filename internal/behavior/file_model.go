package behavior

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"
)

// FileModel is a multinomial logistic regression exported as JSON:
//
//	{"features": [...], "labels": [...], "weights": [[...], ...], "intercepts": [...]}
//
// weights has one row per label and one column per feature. The model is
// immutable after loading.
type FileModel struct {
	FeatureNames []string    `json:"features"`
	Labels       []string    `json:"labels"`
	Weights      [][]float64 `json:"weights"`
	Intercepts   []float64   `json:"intercepts"`
}

// LoadFileModel reads and validates a model artifact.
func LoadFileModel(path string) (*FileModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening model file: %w", err)
	}
	defer f.Close()

	var m FileModel
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *FileModel) validate() error {
	if len(m.FeatureNames) == 0 || len(m.Labels) == 0 {
		return fmt.Errorf("%w: features and labels are required", ErrInvalidModel)
	}
	if len(m.Weights) != len(m.Labels) || len(m.Intercepts) != len(m.Labels) {
		return fmt.Errorf("%w: need one weight row and intercept per label", ErrInvalidModel)
	}
	for i, row := range m.Weights {
		if len(row) != len(m.FeatureNames) {
			return fmt.Errorf("%w: weight row %d has %d columns, want %d", ErrInvalidModel, i, len(row), len(m.FeatureNames))
		}
	}
	return nil
}

func (m *FileModel) Features() []string {
	return slices.Clone(m.FeatureNames)
}

func (m *FileModel) Predict(ctx context.Context, x []float64) (string, error) {
	probs, err := m.PredictProba(ctx, x)
	if err != nil {
		return "", err
	}

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return m.Labels[best], nil
}

func (m *FileModel) PredictProba(_ context.Context, x []float64) ([]float64, error) {
	if err := CheckVector(m, x); err != nil {
		return nil, err
	}

	logits := make([]float64, len(m.Labels))
	for k, row := range m.Weights {
		z := m.Intercepts[k]
		for j, w := range row {
			z += w * x[j]
		}
		logits[k] = z
	}
	return softmax(logits), nil
}

func softmax(z []float64) []float64 {
	maxZ := slices.Max(z)
	out := make([]float64, len(z))
	var sum float64
	for i, v := range z {
		out[i] = math.Exp(v - maxZ)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
