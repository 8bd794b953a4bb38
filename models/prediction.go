package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PredictRequest is the decoded body of POST /predict. Exactly one of Vector
// and Named is set: Vector when the client sends a positional feature array,
// Named when it sends feature names mapped to values.
type PredictRequest struct {
	Vector []float64
	Named  map[string]any
}

// UnmarshalJSON accepts {"features": [..]}, {"features": {..}} and a flat
// object of named features.
func (r *PredictRequest) UnmarshalJSON(b []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(b, &body); err != nil {
		return fmt.Errorf("predict request must be a JSON object: %w", err)
	}

	raw, ok := body["features"]
	if ok {
		trimmed := bytes.TrimSpace(raw)
		switch {
		case len(trimmed) > 0 && trimmed[0] == '[':
			var vector []any
			if err := json.Unmarshal(trimmed, &vector); err != nil {
				return fmt.Errorf("features: %w", err)
			}
			r.Vector = make([]float64, len(vector))
			for i, v := range vector {
				f, ok := v.(float64)
				if !ok {
					return fmt.Errorf("%w: features[%d] is not a number", ErrInvalidFeatures, i)
				}
				r.Vector[i] = f
			}
			return nil
		case len(trimmed) > 0 && trimmed[0] == '{':
			return decodeNamed(trimmed, &r.Named)
		}
	}

	return decodeNamed(b, &r.Named)
}

func decodeNamed(b []byte, dst *map[string]any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("features: %w", err)
	}
	return nil
}

// Prediction is the response of POST /predict.
type Prediction struct {
	Prediction    string    `json:"prediction"`
	Probabilities []float64 `json:"probabilities"`
	Suggestions   []string  `json:"suggestions"`
}

// FusedRequest is the body of POST /predict_fused.
type FusedRequest struct {
	QuestionnaireScore Score          `json:"questionnaire_score"`
	BehaviorFeatures   map[string]any `json:"behavior_features"`
}

// FusionMethod names the rule used to combine labels.
const FusionMethod = "rule_based_fusion"

// Explanation records the inputs of a fused decision.
type Explanation struct {
	QuestionnaireLabel Label  `json:"questionnaire_label"`
	BehaviorLabel      *Label `json:"behavior_label"`
	Method             string `json:"method"`
}

// FusedPrediction is the response of POST /predict_fused.
type FusedPrediction struct {
	Label              Label       `json:"label"`
	QuestionnaireLabel Label       `json:"questionnaire_label"`
	BehaviorLabel      *Label      `json:"behavior_label"`
	BehaviorProbs      []float64   `json:"behavior_probs"`
	Explanation        Explanation `json:"explanation"`
	Suggestions        []string    `json:"suggestions"`
}
