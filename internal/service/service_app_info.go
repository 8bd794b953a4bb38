package service

import (
	"context"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/models"
)

type appInfoService struct {
	appVersion string

	modelLoaded func() bool
	llmEnabled  func() bool

	logger *logger.Logger
}

// NewAppInfoService reports the build version and which optional
// collaborators are active. The probes are consulted on every Health call.
func NewAppInfoService(cfg config.App, modelLoaded, llmEnabled func() bool, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		modelLoaded: modelLoaded,
		llmEnabled:  llmEnabled,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      "ok",
		ModelLoaded: probe(s.modelLoaded),
		LLMEnabled:  probe(s.llmEnabled),
		Version:     s.appVersion,
	}
}

func probe(f func() bool) bool {
	return f != nil && f()
}
