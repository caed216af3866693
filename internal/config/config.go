package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds wellbeing settings. Every field is optional.
type Config struct {
	// Seed file replacing the embedded resources/coaches/departments
	SeedPath string `yaml:"seed_path"`

	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Output string `yaml:"output"` // stderr, stdout or a file path
}

// UIConfig configures the interactive dashboard.
type UIConfig struct {
	Animations bool `yaml:"animations"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Output: "stderr",
		},
		UI: UIConfig{
			Animations: true,
		},
	}
}

// DefaultPath returns ~/.wellbeing/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".wellbeing", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WELLBEING_SEED"); v != "" {
		c.SeedPath = v
	}
	if v := os.Getenv("WELLBEING_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WELLBEING_LOG_OUTPUT"); v != "" {
		c.Logging.Output = v
	}
	if v := os.Getenv("WELLBEING_NO_ANIMATION"); v != "" && v != "0" && !strings.EqualFold(v, "false") {
		c.UI.Animations = false
	}
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: use debug, info, warn or error", c.Logging.Level)
	}
	if strings.TrimSpace(c.Logging.Output) == "" {
		return fmt.Errorf("log output must not be empty")
	}
	return nil
}
