package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/models"
)

type consentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewConsentRepository(db *DB, logger *logger.Logger) ConsentRepository {
	logger.Debug().Msg("creating consent repository")
	return &consentRepository{
		db:     db,
		logger: logger,
	}
}

// SaveConsent appends a consent record and returns it with its id.
func (r *consentRepository) SaveConsent(ctx context.Context, record models.ConsentRecord) (models.ConsentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveConsentQuery(r.db.builder, record)
	if err != nil {
		return models.ConsentRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*consentRepository.SaveConsent").Msg("error inserting consent")
		return models.ConsentRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}
