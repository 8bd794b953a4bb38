package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/models"
)

type consentService struct {
	consentRepository store.ConsentRepository
	now               func() time.Time
	logger            *logger.Logger
}

func NewConsentService(consentRepository store.ConsentRepository, logger *logger.Logger) ConsentService {
	return &consentService{
		consentRepository: consentRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// RecordConsent appends a consent entry. A missing flag records consent
// given; a missing timestamp records the server time.
func (s *consentService) RecordConsent(ctx context.Context, req models.ConsentRequest) (models.ConsentRecord, error) {
	record := models.ConsentRecord{
		PseudonymousID: resolvePseudonym(ctx, req.Identity, GuestConsentIdentity),
		Consent:        req.Consent == nil || *req.Consent,
		RecordedAt:     req.When().Time,
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.now().UTC()
	}

	saved, err := s.consentRepository.SaveConsent(ctx, record)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentService.RecordConsent").Msg("error saving consent")
		return models.ConsentRecord{}, fmt.Errorf("error saving consent: %w", err)
	}

	return saved, nil
}
