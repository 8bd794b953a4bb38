package service

import (
	"context"

	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

// Identities used when a request carries neither an identifier nor a
// session. They are pseudonymized like any other identifier.
const (
	GuestAssessmentIdentity = "guest"
	GuestConsentIdentity    = "anonymous"
)

// resolvePseudonym picks the actor of a write: the identifier in the body,
// then the session bound by the auth middleware, then the guest identity.
func resolvePseudonym(ctx context.Context, id models.Identity, guest string) string {
	if raw := id.Raw(); raw != "" {
		return utils.Anonymize(raw)
	}
	if pseudonym, ok := utils.GetPseudonymFromContext(ctx); ok {
		return pseudonym
	}
	return utils.Anonymize(guest)
}
