// Package config loads the service configuration from a YAML file with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
)

// Config is the root configuration of the extraction service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logger     LoggerConfig     `yaml:"logger"`
	LLM        LLMConfig        `yaml:"llm"`
	OCR        OCRConfig        `yaml:"ocr"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LoggerConfig mirrors logger.Config in YAML form.
type LoggerConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

// LLMConfig configures the OpenAI-compatible chat completion endpoint used
// by the model-backed extractor. An empty APIKey disables the model tier;
// the pipeline then runs on heuristics alone.
type LLMConfig struct {
	APIKey        string `yaml:"api_key"`
	APIURL        string `yaml:"api_url"`
	PrimaryModel  string `yaml:"primary_model"`
	FallbackModel string `yaml:"fallback_model"`
	Timeout       string `yaml:"timeout"`
}

// OCRConfig configures the remote OCR provider used for image uploads. An
// empty APIKey disables OCR; image uploads then yield the empty candidate.
type OCRConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Language string `yaml:"language"`
	Timeout  string `yaml:"timeout"`
}

// ExtractionConfig tunes the extraction pipeline.
type ExtractionConfig struct {
	// MinTextLength is the minimum number of extracted characters below
	// which structured extraction is skipped entirely.
	MinTextLength int `yaml:"min_text_length"`
	// AcceptScore is the completeness score at or above which a primary
	// model result is accepted without trying the fallback model. A
	// pointer so an explicit 0 (always accept the primary) is distinct
	// from the key being absent.
	AcceptScore *float64 `yaml:"accept_score"`
}

// LoadConfig reads path, applies environment overrides and fills defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return &cfg, nil
}

// Environment variables override file values so secrets stay out of YAML.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CVPRO_LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("CVPRO_LLM_API_URL"); v != "" {
		c.LLM.APIURL = v
	}
	if v := os.Getenv("CVPRO_OCR_API_KEY"); v != "" {
		c.OCR.APIKey = v
	}
	if v := os.Getenv("CVPRO_SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8888"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.LLM.PrimaryModel == "" {
		c.LLM.PrimaryModel = "gpt-4o-mini"
	}
	if c.LLM.FallbackModel == "" {
		c.LLM.FallbackModel = "gpt-3.5-turbo"
	}
	if c.LLM.Timeout == "" {
		c.LLM.Timeout = "45s"
	}
	if c.OCR.Endpoint == "" {
		c.OCR.Endpoint = "https://api.ocr.space/parse/image"
	}
	if c.OCR.Language == "" {
		c.OCR.Language = "fre"
	}
	if c.OCR.Timeout == "" {
		c.OCR.Timeout = "20s"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 5
	}
	if c.Extraction.AcceptScore == nil {
		score := 0.6
		c.Extraction.AcceptScore = &score
	}
}

// GetDuration parses s as a duration, falling back to def when s is empty
// or malformed. Malformed values are logged, not fatal.
func GetDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Warn().Str("value", s).Dur("default", def).Msg("invalid duration in config, using default")
		return def
	}
	return d
}
