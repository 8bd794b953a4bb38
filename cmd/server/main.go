package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/behavior"
	"github.com/MKhiriev/go-medcare/internal/config"
	"github.com/MKhiriev/go-medcare/internal/handler"
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/responder"
	"github.com/MKhiriev/go-medcare/internal/server"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/MKhiriev/go-medcare/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("medcare-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	// the linker-injected version wins only when none is configured
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	// the service still starts without a model; /predict then answers 500
	model, err := behavior.Load(ctx, cfg.Model, log)
	if err != nil {
		log.Err(err).Msg("behavior model unavailable")
	}

	r, err := newResponder(cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating responder")
	}

	services, err := service.NewServices(storages, model, r, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newResponder(cfg config.LLM, log *logger.Logger) (*responder.Responder, error) {
	if !cfg.Enabled {
		return responder.New(), nil
	}

	client, err := responder.NewOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("model", cfg.Model).Msg("language model fallback enabled")

	return responder.New(responder.WithLLM(client, cfg.Timeout, cfg.Rate, cfg.Burst)), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
