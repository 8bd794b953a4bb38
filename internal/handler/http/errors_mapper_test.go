package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"missing identity", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrMissingIdentity), http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: score must be >= 0", validators.ErrValidation), http.StatusBadRequest},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized},
		{"duplicate", fmt.Errorf("register: %w", store.ErrIdentityAlreadyExists), http.StatusConflict},
		{"not found", store.ErrNoUserWasFound, http.StatusNotFound},
		{"feature", fmt.Errorf("%w: expected 3 features", behavior.ErrFeature), http.StatusBadRequest},
		{"model absent", behavior.ErrModelUnavailable, http.StatusInternalServerError},
		{"storage", fmt.Errorf("%w: %w", store.ErrExecutingStatement, errors.New("disk")), http.StatusInternalServerError},
		{"validation beats storage", fmt.Errorf("%w: %w", store.ErrExecutingQuery, validators.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_HidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil),
		fmt.Errorf("%w: password=hunter22", store.ErrExecutingQuery), "test")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestWriteServiceError_ModelUnavailableIsPublic(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"absent", behavior.ErrModelUnavailable},
		{"remote failure", fmt.Errorf("%w: upstream returned 503 at 10.0.0.7", behavior.ErrModelUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodPost, "/predict", nil), tt.err, "predict")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"behavior model not available"}`, rec.Body.String())
		})
	}
}
