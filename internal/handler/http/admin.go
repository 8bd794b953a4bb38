package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
	"github.com/go-chi/chi/v5"
)

const exportFilename = "assessments_export.csv"

// exportCSV streams every assessment as a CSV attachment. The document is
// rendered into memory first so that a storage failure can still be
// reported with a proper status.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.services.AdminService.ExportCSV(r.Context(), &buf); err != nil {
		writeServiceError(w, r, err, "export")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write export")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.AdminService.PurgeUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "purge")
		return
	}

	logger.FromRequest(r).Info().
		Int64("assessments", result.Assessments).
		Int64("consents", result.Consents).
		Msg("user data purged")

	utils.WriteJSON(w, models.StatusResponse{Status: "deleted"}, http.StatusOK)
}
