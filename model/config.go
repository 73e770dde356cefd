package model

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ValidatorConfig holds all tunable parameters of the validation engine.
// The zero value is not usable, start from DefaultValidatorConfig.
type ValidatorConfig struct {
	// NER model settings
	ModelName string `yaml:"model_name" json:"model_name"`
	ModelDir  string `yaml:"model_dir" json:"model_dir"`

	// Document bounds enforced by hosts (CLI/server), not by the engine
	MinDocumentLength int `yaml:"min_document_length" json:"min_document_length"`
	MaxDocumentLength int `yaml:"max_document_length" json:"max_document_length"`

	// SeverityWeights maps severity levels to score deductions.
	// Overriding changes scoring, the defaults keep scores backward compatible.
	SeverityWeights map[Severity]int `yaml:"severity_weights" json:"severity_weights"`

	// Logging
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultValidatorConfig returns the configuration the engine ships with
func DefaultValidatorConfig() *ValidatorConfig {
	weights := make(map[Severity]int, len(DefaultSeverityWeights))
	for severity, weight := range DefaultSeverityWeights {
		weights[severity] = weight
	}

	return &ValidatorConfig{
		ModelName:         "KnightsAnalytics/distilbert-NER",
		ModelDir:          "./models",
		MinDocumentLength: 10,
		MaxDocumentLength: 10000,
		SeverityWeights:   weights,
		LogLevel:          "info",
	}
}

// NewValidatorConfigFromEnv loads configuration from environment variables,
// reading an optional .env file first. Unset variables keep their defaults.
//
// Recognized variables: REQCHECK_MODEL_NAME, REQCHECK_MODEL_DIR,
// REQCHECK_MIN_DOCUMENT_LENGTH, REQCHECK_MAX_DOCUMENT_LENGTH, REQCHECK_LOG_LEVEL.
func NewValidatorConfigFromEnv() (*ValidatorConfig, error) {
	// A missing .env file is fine, explicit environment wins either way
	_ = godotenv.Load()

	config := DefaultValidatorConfig()

	if v := os.Getenv("REQCHECK_MODEL_NAME"); v != "" {
		config.ModelName = v
	}
	if v := os.Getenv("REQCHECK_MODEL_DIR"); v != "" {
		config.ModelDir = v
	}
	if v := os.Getenv("REQCHECK_MIN_DOCUMENT_LENGTH"); v != "" {
		length, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQCHECK_MIN_DOCUMENT_LENGTH %q: %w", v, err)
		}
		config.MinDocumentLength = length
	}
	if v := os.Getenv("REQCHECK_MAX_DOCUMENT_LENGTH"); v != "" {
		length, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQCHECK_MAX_DOCUMENT_LENGTH %q: %w", v, err)
		}
		config.MaxDocumentLength = length
	}
	if v := os.Getenv("REQCHECK_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}

	return config, nil
}

// Weight returns the score deduction for a severity under this configuration.
// Unknown severities deduct 1 point, matching the original scoring behavior.
func (c *ValidatorConfig) Weight(severity Severity) int {
	if weight, ok := c.SeverityWeights[severity]; ok {
		return weight
	}
	return 1
}

// SlogLevel maps the configured log level string to a slog level.
// Unknown values fall back to info.
func (c *ValidatorConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CheckDocumentBounds rejects documents whose trimmed length falls
// outside the configured bounds. Hosts call this before handing the
// document to the engine, the engine itself imposes no length cap.
func (c *ValidatorConfig) CheckDocumentBounds(document string) error {
	length := len(strings.TrimSpace(document))
	if length < c.MinDocumentLength {
		return fmt.Errorf("document must be at least %d characters", c.MinDocumentLength)
	}
	if length > c.MaxDocumentLength {
		return fmt.Errorf("document must be at most %d characters", c.MaxDocumentLength)
	}
	return nil
}
