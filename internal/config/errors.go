package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClassifierConfigs indicates cut points that do not form
	// three ordered bands.
	ErrInvalidClassifierConfigs = errors.New("invalid classifier configuration")
	// ErrInvalidLLMConfigs indicates an enabled language model without the
	// settings needed to call it.
	ErrInvalidLLMConfigs = errors.New("invalid llm configuration")
)
