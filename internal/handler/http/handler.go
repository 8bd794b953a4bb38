package http

import (
	"time"

	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	resultRedirect string
	signKey        string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		resultRedirect: cfg.App.ResultRedirect,
		signKey:        cfg.App.AdminSecret,
		logger:         logger,
	}
}
