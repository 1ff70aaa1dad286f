package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Engine names accepted by the `engine` setting.
const (
	EngineKeyword = "keyword"
	EngineLLM     = "llm"
)

// Config holds all configuration for consulta-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Engine selects the answering pipeline: "keyword" or "llm".
	Engine string `yaml:"engine" env:"ENGINE" env-default:"keyword"`

	Matcher  MatcherConfig  `yaml:"matcher"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	LLM      LLMConfig      `yaml:"llm"`
}

// MatcherConfig tunes the keyword engine.
type MatcherConfig struct {
	// Threshold is the minimum Jaccard similarity a catalog question must
	// reach to be considered a match.
	Threshold float64 `yaml:"threshold" env:"MATCHER_THRESHOLD" env-default:"0.3"`
}

// SnapshotConfig holds the SQLite snapshot settings.
type SnapshotConfig struct {
	// Path is the snapshot file location. It is seeded on first start.
	Path string `yaml:"path" env:"SNAPSHOT_PATH" env-default:"restaurante_simulado.db"`
	// QueryTimeoutSeconds bounds each statement's execution time.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds" env:"SNAPSHOT_QUERY_TIMEOUT_SECONDS" env-default:"10"`
}

// LLMConfig holds text-generation endpoint settings. Required only when
// Engine is "llm".
type LLMConfig struct {
	BaseURL        string  `yaml:"base_url" env:"LLM_BASE_URL" env-default:""`
	Model          string  `yaml:"model" env:"LLM_MODEL" env-default:""`
	APIKey         string  `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"30"`
	MaxRetries     int     `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"1"`
	Temperature    float64 `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.2"`
	MaxTokens      int     `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"300"`
}

// QueryTimeout returns the statement timeout as a duration.
func (c *SnapshotConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// Timeout returns the per-request LLM timeout as a duration.
func (c *LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from config.yaml with environment variable
// overrides. When config.yaml does not exist, environment variables and
// defaults alone are used. The version parameter is injected at build time
// and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Engine {
	case EngineKeyword, EngineLLM:
	default:
		return fmt.Errorf("unknown engine %q (expected %q or %q)", c.Engine, EngineKeyword, EngineLLM)
	}

	if c.Matcher.Threshold < 0 || c.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher threshold %g out of range [0, 1]", c.Matcher.Threshold)
	}

	if c.Engine == EngineLLM {
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("llm engine requires base_url (LLM_BASE_URL)")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("llm engine requires model (LLM_MODEL)")
		}
	}

	return nil
}
