package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "medcare"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultMediumCut      = 4
	DefaultHighCut        = 8
	DefaultModelTimeout   = 3 * time.Second
	DefaultLLMModel       = "gpt-4o-mini"
	DefaultLLMTimeout     = 15 * time.Second
	DefaultLLMRate        = 1.0
	DefaultLLMBurst       = 3
	DefaultLogLevel       = "debug"

	DefaultLLMSystemPrompt = "You are a supportive assistant for students. " +
		"Answer briefly and kindly. Do not diagnose. " +
		"If the user may be in danger, advise contacting local emergency services."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      DefaultLogLevel,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Classifier: Classifier{
			MediumCut: DefaultMediumCut,
			HighCut:   DefaultHighCut,
		},
		Model: Model{
			Timeout: DefaultModelTimeout,
		},
		LLM: LLM{
			Model:        DefaultLLMModel,
			Timeout:      DefaultLLMTimeout,
			Rate:         DefaultLLMRate,
			Burst:        DefaultLLMBurst,
			SystemPrompt: DefaultLLMSystemPrompt,
		},
	}
}
