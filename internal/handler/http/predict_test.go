package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/MKhiriev/go-medcare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		name       string
		loaded     bool
		body       string
		predictErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "model absent",
			body:       `{"features":[1,2]}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"behavior model not available"}`,
		},
		{
			name:       "positional features",
			loaded:     true,
			body:       `{"features":[1,2]}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"prediction":"High","probabilities":[0.1,0.9],"suggestions":["Reach out to someone you trust."]}`,
		},
		{
			name:       "named features",
			loaded:     true,
			body:       `{"sleep_hours":4,"screen_time":9}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric feature",
			loaded:     true,
			body:       `{"features":[1,"x"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "feature error from model",
			loaded:     true,
			body:       `{"features":[1]}`,
			predictErr: fmt.Errorf("%w: expected 2 features, got 1", behavior.ErrFeature),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid behavior features: expected 2 features, got 1"}`,
		},
		{
			name:       "unexpected failure",
			loaded:     true,
			body:       `{"features":[1,2]}`,
			predictErr: errors.New("panic in model"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction := &mockPredictionService{
				loaded: tt.loaded,
				predictFn: func(_ context.Context, req models.PredictRequest) (models.Prediction, error) {
					if tt.predictErr != nil {
						return models.Prediction{}, tt.predictErr
					}
					assert.True(t, req.Vector != nil || req.Named != nil)
					return models.Prediction{
						Prediction:    "High",
						Probabilities: []float64{0.1, 0.9},
						Suggestions:   []string{"Reach out to someone you trust."},
					}, nil
				},
			}
			h := newTestHandler(&service.Services{PredictionService: prediction})

			rec := httptest.NewRecorder()
			h.predict(rec, httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestPredictFused(t *testing.T) {
	var got models.FusedRequest
	prediction := &mockPredictionService{
		predictFusedFn: func(_ context.Context, req models.FusedRequest) (models.FusedPrediction, error) {
			got = req
			return models.FusedPrediction{
				Label:              models.LabelMedium,
				QuestionnaireLabel: models.LabelMedium,
				BehaviorProbs:      []float64{},
				Explanation: models.Explanation{
					QuestionnaireLabel: models.LabelMedium,
					Method:             models.FusionMethod,
				},
				Suggestions: []string{},
			}, nil
		},
	}
	h := newTestHandler(&service.Services{PredictionService: prediction})

	body := `{"questionnaire_score":"5","behavior_features":{"sleep_hours":4}}`
	rec := httptest.NewRecorder()
	h.predictFused(rec, httptest.NewRequest(http.MethodPost, "/predict_fused", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, got.QuestionnaireScore.Int())
	assert.Contains(t, got.BehaviorFeatures, "sleep_hours")
	assert.JSONEq(t, `{
		"label":"Medium",
		"questionnaire_label":"Medium",
		"behavior_label":null,
		"behavior_probs":[],
		"explanation":{"questionnaire_label":"Medium","behavior_label":null,"method":"rule_based_fusion"},
		"suggestions":[]
	}`, rec.Body.String())
}

func TestPredictFused_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil)

	rec := httptest.NewRecorder()
	h.predictFused(rec, httptest.NewRequest(http.MethodPost, "/predict_fused", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
