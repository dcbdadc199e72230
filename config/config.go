// Package config loads citypath settings from an optional YAML file and
// CITYPATH_* environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// DataConfig describes the distance matrix to load.
type DataConfig struct {
	Path           string `yaml:"path" validate:"required"`
	Sentinel       int64  `yaml:"sentinel"`
	StrictSymmetry bool   `yaml:"strict_symmetry"`
}

// QueryConfig holds defaults for path queries.
type QueryConfig struct {
	Algorithm string `yaml:"algorithm" validate:"oneof=bfs dfs both"`

	// MaxHops limits routes to this many roads. 0 means no limit.
	MaxHops int `yaml:"max_hops" validate:"gte=0"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	// File is written after each command when non-empty.
	File string `yaml:"file"`
}

const (
	defaultDataPath      = "data/cities.csv"
	defaultSentinel      = 99999
	defaultAlgorithm     = "both"
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:    DataConfig{Path: defaultDataPath, Sentinel: defaultSentinel},
		Query:   QueryConfig{Algorithm: defaultAlgorithm},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load starts from Default, overlays the YAML file at path if path is not
// empty, applies environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Data.Path = valueOrDefault("CITYPATH_DATA", cfg.Data.Path)
	cfg.Query.Algorithm = valueOrDefault("CITYPATH_ALGORITHM", cfg.Query.Algorithm)
	cfg.Logging.Level = valueOrDefault("CITYPATH_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("CITYPATH_LOG_FORMAT", cfg.Logging.Format)
	cfg.Metrics.File = valueOrDefault("CITYPATH_METRICS_FILE", cfg.Metrics.File)

	if v := os.Getenv("CITYPATH_SENTINEL"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid CITYPATH_SENTINEL: %w", err)
		}
		cfg.Data.Sentinel = n
	}
	if v := os.Getenv("CITYPATH_MAX_HOPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid CITYPATH_MAX_HOPS: %w", err)
		}
		cfg.Query.MaxHops = n
	}
	if v := os.Getenv("CITYPATH_STRICT_SYMMETRY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CITYPATH_STRICT_SYMMETRY: %w", err)
		}
		cfg.Data.StrictSymmetry = b
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
