package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "register")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Str("pseudonymous_id", user.PseudonymousID).Msg("user registered")
	utils.WriteJSON(w, models.StatusResponse{Status: "registered", Identifier: user.PseudonymousID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Debug().Str("pseudonymous_id", user.PseudonymousID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.StatusResponse{Status: "ok", Identifier: user.PseudonymousID}, http.StatusOK)
}

// startSession issues a session token for user and attaches it to the
// response as a bearer header and a cookie.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
