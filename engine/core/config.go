package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	// One of debug, info, warn, error or fatal.
	Level        string `toml:"level"`
	Prefix       string `toml:"prefix"`
	ReportCaller bool   `toml:"report_caller"`
}

// Config holds the settings shared by the tools built on top of the math
// packages.
type Config struct {
	Log LogConfig `toml:"log"`
	// Tolerance used when comparing float results component by component.
	Tolerance float32 `toml:"tolerance"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:        "info",
			ReportCaller: true,
		},
		Tolerance: 1e-6,
	}
}

// ParseConfig decodes a TOML document on top of DefaultConfig, so missing
// keys keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	return nil
}

// Apply configures the shared logger.
func (c Config) Apply() error {
	if c.Log.Level != "" {
		if err := SetLogLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
		}
	}
	if c.Log.Prefix != "" {
		SetLogPrefix(c.Log.Prefix)
	}
	SetLogReportCaller(c.Log.ReportCaller)
	return nil
}
