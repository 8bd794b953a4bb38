package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMissingIdentity:         http.StatusBadRequest,
	service.ErrInvalidLabel:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	validators.ErrValidation:           http.StatusBadRequest,

	behavior.ErrFeature:          http.StatusBadRequest,
	behavior.ErrModelUnavailable: http.StatusInternalServerError,

	store.ErrIdentityAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// validation-like errors are more specific than the storage errors they may
// wrap, so they are matched first.
var errorPrecedence = []error{
	validators.ErrValidation,
	service.ErrMissingIdentity,
	service.ErrInvalidLabel,
	service.ErrInvalidDataProvided,
	service.ErrInvalidCredentials,
	service.ErrUnauthorized,
	behavior.ErrFeature,
	behavior.ErrModelUnavailable,
	store.ErrIdentityAlreadyExists,
	store.ErrNoUserWasFound,
}

// publicServerErrors are server-side failures whose message is safe and
// useful for the caller.
var publicServerErrors = []error{
	behavior.ErrModelUnavailable,
}

func statusFromError(err error) int {
	for _, target := range errorPrecedence {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Client
// errors echo the error text. Server errors answer with the generic status
// text unless they match one of publicServerErrors, whose own text is sent.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("action", action).Msg("request failed")
		utils.WriteError(w, publicServerMessage(err, status), status)
		return
	}

	log.Warn().Err(err).Str("action", action).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}

// writeClientError answers 400 with the public message and logs the cause.
func writeClientError(w http.ResponseWriter, r *http.Request, public, cause error) {
	logger.FromRequest(r).Warn().Err(cause).Msg(public.Error())
	utils.WriteError(w, public.Error(), http.StatusBadRequest)
}

func publicServerMessage(err error, status int) string {
	for _, public := range publicServerErrors {
		if errors.Is(err, public) {
			return public.Error()
		}
	}
	return http.StatusText(status)
}
