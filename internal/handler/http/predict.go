package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	if !h.services.PredictionService.ModelLoaded() {
		writeServiceError(w, r, behavior.ErrModelUnavailable, "predict")
		return
	}

	var req models.PredictRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", behavior.ErrFeature, err), "predict")
		return
	}

	prediction, err := h.services.PredictionService.Predict(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "predict")
		return
	}

	utils.WriteJSON(w, prediction, http.StatusOK)
}

// predictFused never fails because of the behavioral model; only a body
// that is not JSON at all is rejected.
func (h *Handler) predictFused(w http.ResponseWriter, r *http.Request) {
	var req models.FusedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	fused, err := h.services.PredictionService.PredictFused(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "predict fused")
		return
	}

	utils.WriteJSON(w, fused, http.StatusOK)
}
