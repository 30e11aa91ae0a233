// Package config loads execdeck settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv names the config file when --config is not given.
	ConfigEnv = "EXECDECK_CONFIG"
	// AssetRootEnv overrides display.asset_root.
	AssetRootEnv = "EXECDECK_ASSET_ROOT"
	// LogFileEnv overrides logging.file.
	LogFileEnv = "EXECDECK_LOG_FILE"
	// LogLevelEnv overrides logging.level.
	LogLevelEnv = "EXECDECK_LOG_LEVEL"
	// OTLPEndpointEnv is the standard OpenTelemetry exporter endpoint variable.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv is the standard OpenTelemetry service name variable.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
)

// Config holds all execdeck settings.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	AssetRoot      string `yaml:"asset_root"`
	Reveal         bool   `yaml:"reveal"`
	RevealInterval string `yaml:"reveal_interval"`
	MarkdownStyle  string `yaml:"markdown_style"` // glamour style name: dark, light, notty
	ShowHint       bool   `yaml:"show_hint"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	File  string `yaml:"file"`  // empty disables logging; the terminal belongs to the deck
	Level string `yaml:"level"` // debug, info, warn, error
}

// TelemetryConfig configures trace export.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			AssetRoot:      "assets",
			Reveal:         true,
			RevealInterval: "60ms",
			MarkdownStyle:  "dark",
			ShowHint:       true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "execdeck",
		},
	}
}

// Load reads the config file at path, then applies environment overrides.
// An empty path falls back to $EXECDECK_CONFIG. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(AssetRootEnv); v != "" {
		c.Display.AssetRoot = v
	}
	if v := os.Getenv(LogFileEnv); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(OTLPEndpointEnv); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv(ServiceNameEnv); v != "" {
		c.Telemetry.ServiceName = v
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	var errs []error
	if _, err := time.ParseDuration(c.Display.RevealInterval); err != nil {
		errs = append(errs, fmt.Errorf("display.reveal_interval: %w", err))
	} else if c.RevealInterval() <= 0 {
		errs = append(errs, fmt.Errorf("display.reveal_interval must be positive, got %s", c.Display.RevealInterval))
	}
	valid := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLevels))
	}
	return errors.Join(errs...)
}

// RevealInterval returns the delay between revealed items.
func (c *Config) RevealInterval() time.Duration {
	d, err := time.ParseDuration(c.Display.RevealInterval)
	if err != nil {
		return 60 * time.Millisecond
	}
	return d
}

// TelemetryEnabled reports whether a trace endpoint is configured.
func (c *Config) TelemetryEnabled() bool {
	return c.Telemetry.Endpoint != ""
}
