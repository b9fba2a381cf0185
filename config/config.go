package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error [Config.Validate] returns.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the report renderer.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "FIGSTATS_LOG_LEVEL"
	EnvOutput   = "FIGSTATS_OUTPUT"
)

// Config is the on-disk configuration of the figstats command.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	LogFormat  string     `yaml:"log_format"`
	Dataset    Dataset    `yaml:"dataset"`
	Thresholds Thresholds `yaml:"thresholds"`
	Output     string     `yaml:"output"`
}

// Dataset points at the transaction and customer files. Both empty selects
// the embedded sample.
type Dataset struct {
	Transactions string `yaml:"transactions"`
	Customers    string `yaml:"customers"`
}

// Thresholds holds the amount boundaries used by the analytics questions.
// Amounts below Small are small, below Medium are medium, the rest are big.
// Amounts strictly above Large are large transactions.
type Thresholds struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Thresholds: Thresholds{
			Small:  25,
			Medium: 75,
			Large:  200,
		},
		Output: OutputText,
	}
}

// Load decodes a YAML file on top of [Default], applies the environment
// overrides and validates the result. Keys missing from the file keep their
// default; keys present, zero included, replace it. An empty path loads the
// defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.Output = v
	}
}

// Validate checks the threshold ordering and the output format.
func (c *Config) Validate() error {
	t := c.Thresholds
	if t.Small <= 0 || t.Medium < t.Small {
		return fmt.Errorf("%w: need 0 < small <= medium, got small=%v medium=%v", ErrInvalidConfig, t.Small, t.Medium)
	}
	if t.Large <= 0 {
		return fmt.Errorf("%w: large threshold must be positive, got %v", ErrInvalidConfig, t.Large)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}
