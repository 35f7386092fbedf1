package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	AppID   string `yaml:"app_id"`
	Timeout string `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the config file at path. An empty path or a missing file is
// not an error; defaults apply. Values may reference environment variables
// with ${VAR} so secrets can stay out of the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		cfg.setDefaults()
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.setDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Timeout parses the configured HTTP timeout. The API imposes none of its
// own, so a missing or invalid value falls back to 30s rather than waiting
// forever on a dead connection.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func (c *Config) setDefaults() {
	if c.API.Timeout == "" {
		c.API.Timeout = "30s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
