// Package config loads application configuration from a YAML file with
// environment variable overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"venture_analytics/pkg/core/pwerm"
)

// Config holds all application configuration. The engine section carries the
// calibration parameters; a missing section falls back to the tuned defaults.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Batch struct {
		Cron    string `yaml:"cron"`     // cron spec for scheduled revaluation
		DealDir string `yaml:"deal_dir"` // directory of deal files
	} `yaml:"batch"`
	Engine pwerm.Calibration `yaml:"engine"`
}

// Load reads config from a YAML file. A missing file is not an error; the
// caller gets defaults so the binaries run without any config present.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Batch.Cron = "0 6 * * 1" // Monday 06:00
	cfg.Batch.DealDir = "deals"
	cfg.Engine = pwerm.DefaultCalibration()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("API_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DEAL_DIR"); v != "" {
		cfg.Batch.DealDir = v
	}
	return cfg, nil
}
