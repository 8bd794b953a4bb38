package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version        string   `json:"version"`
		LogLevel       string   `json:"log_level"`
		AdminSecret    string   `json:"admin_secret"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		ResultRedirect string   `json:"result_redirect"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Classifier struct {
		MediumCut int `json:"medium_cut"`
		HighCut   int `json:"high_cut"`
	} `json:"classifier,omitempty"`

	Model struct {
		Path    string   `json:"path"`
		URL     string   `json:"url"`
		Timeout Duration `json:"timeout"`
	} `json:"model,omitempty"`

	LLM struct {
		Enabled      bool     `json:"enabled"`
		BaseURL      string   `json:"base_url"`
		APIKey       string   `json:"api_key"`
		Model        string   `json:"model"`
		Timeout      Duration `json:"timeout"`
		Rate         float64  `json:"rate"`
		Burst        int      `json:"burst"`
		SystemPrompt string   `json:"system_prompt"`
	} `json:"llm,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			AdminSecret:    jsonCfg.App.AdminSecret,
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			ResultRedirect: jsonCfg.App.ResultRedirect,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Classifier: Classifier{
			MediumCut: jsonCfg.Classifier.MediumCut,
			HighCut:   jsonCfg.Classifier.HighCut,
		},
		Model: Model{
			Path:    jsonCfg.Model.Path,
			URL:     jsonCfg.Model.URL,
			Timeout: time.Duration(jsonCfg.Model.Timeout),
		},
		LLM: LLM{
			Enabled:      jsonCfg.LLM.Enabled,
			BaseURL:      jsonCfg.LLM.BaseURL,
			APIKey:       jsonCfg.LLM.APIKey,
			Model:        jsonCfg.LLM.Model,
			Timeout:      time.Duration(jsonCfg.LLM.Timeout),
			Rate:         jsonCfg.LLM.Rate,
			Burst:        jsonCfg.LLM.Burst,
			SystemPrompt: jsonCfg.LLM.SystemPrompt,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
