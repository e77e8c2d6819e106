package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPath is used when present and no other path is given
const DefaultConfigPath = "config.yaml"

// Config holds the configuration for the recommender service
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	LLM     LLMConfig     `koanf:"llm"`
	Catalog CatalogConfig `koanf:"catalog"`
	Log     LogConfig     `koanf:"log"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Addr        string   `koanf:"addr" validate:"required"`
	CORSOrigins []string `koanf:"cors_origins"`
}

// LLMConfig selects and locates the completion provider. Sampling settings
// and the model table are fixed and not configurable.
type LLMConfig struct {
	Provider string        `koanf:"provider" validate:"oneof=openai ollama"`
	BaseURL  string        `koanf:"base_url" validate:"omitempty,url"`
	DocsURL  string        `koanf:"docs_url" validate:"omitempty,url"`
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
}

// CatalogConfig points at an optional YAML catalog; empty means built-in
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		LLM: LLMConfig{
			Provider: "openai",
			BaseURL:  "",
			DocsURL:  "https://x.ai/api",
			Timeout:  45 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// envKeys maps environment variables to config paths
var envKeys = map[string]string{
	"SERVER_ADDR":  "server.addr",
	"CORS_ORIGINS": "server.cors_origins",
	"LLM_PROVIDER": "llm.provider",
	"LLM_BASE_URL": "llm.base_url",
	"LLM_DOCS_URL": "llm.docs_url",
	"LLM_TIMEOUT":  "llm.timeout",
	"CATALOG_PATH": "catalog.path",
	"LOG_LEVEL":    "log.level",
	"LOG_FORMAT":   "log.format",
}

// sliceKeys arrive from the environment as comma-separated strings
var sliceKeys = []string{"server.cors_origins"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load layers defaults, an optional YAML file and environment variables
// (in that order of increasing priority) and validates the result.
// An empty path falls back to $CONFIG_PATH, then to config.yaml if present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path = resolvePath(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitSlices(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func resolvePath(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath
	}
	return ""
}

// envKey returns "" for variables that are not ours so koanf skips them
func envKey(name string) string {
	return envKeys[name]
}

func splitSlices(k *koanf.Koanf) error {
	for _, path := range sliceKeys {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		var parts []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
