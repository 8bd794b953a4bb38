package http

import (
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/utils"
)

const adminKeyHeader = "X-Admin-Key"

// adminOnly rejects requests without the admin secret. The secret is read
// from the X-Admin-Key header, then from the "key" query parameter.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(adminKeyHeader)
		if key == "" {
			key = r.URL.Query().Get("key")
		}

		if err := h.services.AdminService.Authorize(r.Context(), key); err != nil {
			logger.FromRequest(r).Warn().Str("uri", r.URL.Path).Msg("admin access denied")
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
