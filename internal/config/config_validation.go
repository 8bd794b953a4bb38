// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Classifier.MediumCut <= 0 || cfg.Classifier.HighCut <= cfg.Classifier.MediumCut {
		return fmt.Errorf("%w: need 0 < medium cut (%d) < high cut (%d)",
			ErrInvalidClassifierConfigs, cfg.Classifier.MediumCut, cfg.Classifier.HighCut)
	}

	if cfg.LLM.Enabled {
		if cfg.LLM.APIKey == "" || cfg.LLM.Model == "" {
			return fmt.Errorf("%w: api key and model are required when enabled", ErrInvalidLLMConfigs)
		}
		if cfg.LLM.Rate <= 0 || cfg.LLM.Burst <= 0 || cfg.LLM.Timeout <= 0 {
			return fmt.Errorf("%w: rate, burst and timeout must be positive", ErrInvalidLLMConfigs)
		}
	}

	return nil
}
