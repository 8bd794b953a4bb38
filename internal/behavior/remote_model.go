package behavior

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/go-resty/resty/v2"
)

// RemoteModel calls a model-serving endpoint:
//
//	GET  {base}/features  -> {"features": [...]}
//	POST {base}/predict   {"features": [...]} -> {"prediction": "...", "probabilities": [...]}
type RemoteModel struct {
	client   *utils.HTTPClient
	features []string
}

type remoteFeatures struct {
	Features []string `json:"features"`
}

type remotePrediction struct {
	Prediction    string    `json:"prediction"`
	Probabilities []float64 `json:"probabilities"`
}

type remoteRequest struct {
	Features []float64 `json:"features"`
}

// NewRemoteModel connects to baseURL and fetches the feature order once.
func NewRemoteModel(ctx context.Context, baseURL string, timeout time.Duration) (*RemoteModel, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid model address: %w", err)
	}

	client := utils.NewHTTPClient(timeout)
	client.SetBaseURL(normalized)

	var result remoteFeatures
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/features")
	if err != nil {
		return nil, fmt.Errorf("features request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if len(result.Features) == 0 {
		return nil, fmt.Errorf("%w: remote model declared no features", ErrInvalidModel)
	}

	return &RemoteModel{client: client, features: result.Features}, nil
}

func (m *RemoteModel) Features() []string {
	out := make([]string, len(m.features))
	copy(out, m.features)
	return out
}

func (m *RemoteModel) Predict(ctx context.Context, x []float64) (string, error) {
	p, err := m.predict(ctx, x)
	if err != nil {
		return "", err
	}
	return p.Prediction, nil
}

func (m *RemoteModel) PredictProba(ctx context.Context, x []float64) ([]float64, error) {
	p, err := m.predict(ctx, x)
	if err != nil {
		return nil, err
	}
	return p.Probabilities, nil
}

// Score answers label and probabilities from one /predict call.
func (m *RemoteModel) Score(ctx context.Context, x []float64) (string, []float64, error) {
	p, err := m.predict(ctx, x)
	if err != nil {
		return "", nil, err
	}
	return p.Prediction, p.Probabilities, nil
}

func (m *RemoteModel) predict(ctx context.Context, x []float64) (remotePrediction, error) {
	if err := CheckVector(m, x); err != nil {
		return remotePrediction{}, err
	}

	var result remotePrediction
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(remoteRequest{Features: x}).
		SetResult(&result).
		Post("/predict")
	if err != nil {
		return remotePrediction{}, fmt.Errorf("%w: predict request: %w", ErrFeature, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return remotePrediction{}, err
	}
	if result.Prediction == "" {
		return remotePrediction{}, fmt.Errorf("%w: empty prediction", ErrFeature)
	}

	return result, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// mapHTTPError turns a non-2xx answer into an error. Client errors mean the
// model rejected the vector; anything else is reported as unavailable.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrFeature, resp.StatusCode(), body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrModelUnavailable, resp.StatusCode(), body)
}
