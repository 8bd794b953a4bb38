package http

import (
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

func (h *Handler) consent(w http.ResponseWriter, r *http.Request) {
	var req models.ConsentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	record, err := h.services.ConsentService.RecordConsent(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "consent")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", record.ID).Bool("consent", record.Consent).Msg("consent recorded")
	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusCreated)
}
