package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

// ExportHeader is the first row of the CSV export.
var ExportHeader = []string{"anon_user", "score", "label", "answers", "ts"}

type adminService struct {
	assessmentRepository store.AssessmentRepository
	purgeRepository      store.PurgeRepository
	adminSecret          string
	logger               *logger.Logger
}

func NewAdminService(assessmentRepository store.AssessmentRepository, purgeRepository store.PurgeRepository, adminSecret string, logger *logger.Logger) AdminService {
	return &adminService{
		assessmentRepository: assessmentRepository,
		purgeRepository:      purgeRepository,
		adminSecret:          adminSecret,
		logger:               logger,
	}
}

// Authorize compares key with the admin secret in constant time. An unset
// secret rejects every key.
func (s *adminService) Authorize(ctx context.Context, key string) error {
	if !utils.SecretsEqual(s.adminSecret, key) {
		logger.FromContext(ctx).Warn().Bool("key_provided", key != "").Msg("admin authorization failed")
		return ErrUnauthorized
	}
	return nil
}

// ExportCSV writes every stored assessment, newest first, keyed by
// pseudonymous id only.
func (s *adminService) ExportCSV(ctx context.Context, w io.Writer) error {
	assessments, err := s.assessmentRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminService.ExportCSV").Msg("error loading assessments")
		return fmt.Errorf("error loading assessments: %w", err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("error writing export: %w", err)
	}
	for _, a := range assessments {
		row := []string{
			a.PseudonymousID,
			strconv.Itoa(a.Score),
			string(a.Label),
			string(a.Answers),
			a.RecordedAt.UTC().Format(time.RFC3339Nano),
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("error writing export: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// PurgeUser removes the assessments and consent records of identifier.
// Purging an identifier without records succeeds.
func (s *adminService) PurgeUser(ctx context.Context, identifier string) (models.PurgeResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.PurgeResult{}, ErrMissingIdentity
	}

	pseudonym := utils.Anonymize(identifier)
	result, err := s.purgeRepository.PurgeUserData(ctx, pseudonym)
	if err != nil {
		return models.PurgeResult{}, fmt.Errorf("error purging user data: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("pseudonymous_id", pseudonym).
		Int64("assessments", result.Assessments).
		Int64("consents", result.Consents).
		Msg("user data purged")
	return result, nil
}
