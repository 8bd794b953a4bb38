// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) saveAssessment(w http.ResponseWriter, r *http.Request) {
	var req models.AssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	saved, err := h.services.AssessmentService.SaveAssessment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "save assessment")
		return
	}

	logger.FromRequest(r).Info().
		Int64("id", saved.ID).
		Str("label", saved.Label.String()).
		Msg("assessment saved")

	utils.WriteJSON(w, models.StatusResponse{
		Status:   "saved",
		Label:    saved.Label,
		Redirect: h.resultRedirect,
	}, http.StatusCreated)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	assessments, err := h.services.AssessmentService.History(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "history")
		return
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}

	utils.WriteJSON(w, assessments, http.StatusOK)
}
