// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// medcare service. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as secrets, token
	// parameters, log level and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Classifier holds the questionnaire score cut points.
	Classifier Classifier `envPrefix:"CLASSIFIER_"`

	// Model configures the behavioral classifier collaborator.
	Model Model `envPrefix:"MODEL_"`

	// LLM configures the optional language-model fallback of the chat
	// responder.
	LLM LLM `envPrefix:"LLM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by /health.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AdminSecret is the shared secret required by the export and purge
	// endpoints. When empty every admin request is rejected.
	// Env: APP_ADMIN_SECRET
	AdminSecret string `env:"ADMIN_SECRET"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResultRedirect, when set, is returned as "redirect" after a saved
	// assessment so a browser client can navigate to the result page.
	// Env: APP_RESULT_REDIRECT
	ResultRedirect string `env:"RESULT_REDIRECT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every inbound HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a postgres:// URL for PostgreSQL, a
	// sqlite:// or file: URL (or a path ending in .db) for SQLite, and an
	// empty value or "memory" for the in-process store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Classifier holds the questionnaire classifier cut points.
type Classifier struct {
	// MediumCut is the lowest score classified as Medium.
	// Env: CLASSIFIER_MEDIUM_CUT
	MediumCut int `env:"MEDIUM_CUT"`

	// HighCut is the lowest score classified as High.
	// Env: CLASSIFIER_HIGH_CUT
	HighCut int `env:"HIGH_CUT"`
}

// Model configures the behavioral classifier. URL takes precedence over
// Path; with neither set the service runs without a model.
type Model struct {
	// Path is a JSON softmax model artifact.
	// Env: MODEL_PATH
	Path string `env:"PATH"`

	// URL is a model-serving endpoint.
	// Env: MODEL_URL
	URL string `env:"URL"`

	// Timeout bounds a single remote prediction.
	// Env: MODEL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// LLM configures the OpenAI-compatible chat completion collaborator.
type LLM struct {
	Enabled      bool          `env:"ENABLED"`
	BaseURL      string        `env:"BASE_URL"`
	APIKey       string        `env:"API_KEY"`
	Model        string        `env:"MODEL"`
	Timeout      time.Duration `env:"TIMEOUT"`
	Rate         float64       `env:"RATE"`
	Burst        int           `env:"BURST"`
	SystemPrompt string        `env:"SYSTEM_PROMPT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (after loading .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
