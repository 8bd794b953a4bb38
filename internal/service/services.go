package service

import (
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/responder"
	"github.com/MKhiriev/go-medcare/internal/risk"
	"github.com/MKhiriev/go-medcare/internal/store"
	"github.com/MKhiriev/go-medcare/internal/validators"
)

type Services struct {
	AuthService       AuthService
	ConsentService    ConsentService
	AssessmentService AssessmentService
	AdminService      AdminService
	PredictionService PredictionService
	ChatService       ChatService
	AppInfoService    AppInfoService
}

// NewServices wires the services over the storages. model may be nil when
// no behavioral model is configured.
func NewServices(storages *store.Storages, model behavior.Model, r *responder.Responder, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	classifier, err := risk.NewClassifier(cfg.Classifier.MediumCut, cfg.Classifier.HighCut)
	if err != nil {
		return nil, fmt.Errorf("error creating classifier: %w", err)
	}

	validator := validators.NewRequestValidator()

	prediction := NewPredictionService(model, classifier, logger)
	chat := NewChatService(r, logger)

	appInfo, err := NewAppInfoService(cfg.App, prediction.ModelLoaded, chat.LLMEnabled, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		ConsentService: NewConsentService(storages.ConsentRepository, logger),
		AssessmentService: NewAssessmentValidationService(validator).
			Wrap(NewAssessmentService(storages.AssessmentRepository, classifier, logger)),
		AdminService:      NewAdminService(storages.AssessmentRepository, storages.PurgeRepository, cfg.App.AdminSecret, logger),
		PredictionService: prediction,
		ChatService:       chat,
		AppInfoService:    appInfo,
	}, nil
}
