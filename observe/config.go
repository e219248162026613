// config.go — file + environment configuration for the observability sink.
package observe

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config controls what the sink records and emits.
type Config struct {
	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" validate:"required"`

	// Detail enables capture of rendered unexpected payloads on the scope.
	Detail bool `yaml:"detail"`

	// MaxDetailEntries bounds the captured entries; 0 keeps all of them.
	MaxDetailEntries int `yaml:"maxDetailEntries" validate:"gte=0,lte=1024"`

	// LogUnexpected emits one structured log line per unexpected diagnostic.
	LogUnexpected bool `yaml:"logUnexpected"`
}

// DefaultConfig is the zero-configuration sink: counting and metrics only.
func DefaultConfig() Config {
	return Config{Namespace: "xgxdiag"}
}

// LoadConfig reads a YAML file, overlays XGXDIAG_* environment variables,
// and validates the result. A .env file next to the process, if present, is
// loaded first so local overrides work without exporting anything.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("observe: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("observe: parse config: %w", err)
	}
	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("observe: invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("XGXDIAG_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv("XGXDIAG_DETAIL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Detail = b
		}
	}
	if v := os.Getenv("XGXDIAG_MAX_DETAIL_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDetailEntries = n
		}
	}
	if v := os.Getenv("XGXDIAG_LOG_UNEXPECTED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUnexpected = b
		}
	}
}
