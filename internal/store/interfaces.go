package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-medcare/models"
)

// UserRepository is the account ledger.
type UserRepository interface {
	// CreateUser inserts a user and returns it with the storage id set.
	// A duplicate pseudonymous id yields ErrIdentityAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByPseudonym returns ErrNoUserWasFound when no row matches.
	FindUserByPseudonym(ctx context.Context, pseudonymousID string) (models.User, error)
}

// ConsentRepository is the append-only consent log.
type ConsentRepository interface {
	SaveConsent(ctx context.Context, record models.ConsentRecord) (models.ConsentRecord, error)
}

// AssessmentRepository stores questionnaire submissions.
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error)
	// GetHistory returns one user's assessments, newest first.
	GetHistory(ctx context.Context, pseudonymousID string) ([]models.Assessment, error)
	// GetAll returns every assessment, newest first.
	GetAll(ctx context.Context) ([]models.Assessment, error)
}

// PurgeRepository removes everything stored for a pseudonymous id except
// the account row.
type PurgeRepository interface {
	// PurgeUserData deletes assessment and consent rows atomically. Purging an
	// id without rows succeeds with a zero result.
	PurgeUserData(ctx context.Context, pseudonymousID string) (models.PurgeResult, error)
}
