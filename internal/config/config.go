package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	APIBaseURL string `yaml:"apiBaseURL"`
	LogLevel   string `yaml:"logLevel"`
	StatePath  string `yaml:"statePath"`
}

// Load reads config from path (defaults to config.yaml), applies env
// overrides and validates the result. StatePath falls back to a file under
// the user config directory when neither the file nor the environment sets
// one.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv("DEADLINEHUB_API_URL"); v != "" {
		cfg.APIBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("DEADLINEHUB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("DEADLINEHUB_STATE_PATH"); v != "" {
		cfg.StatePath = strings.TrimSpace(v)
	}
	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath()
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return errors.New("config: apiBaseURL is required (set in config.yaml or DEADLINEHUB_API_URL)")
	}
	if cfg.StatePath == "" {
		return errors.New("config: statePath could not be determined")
	}
	return nil
}

func defaultStatePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "deadlinehub_state.json"
	}
	return filepath.Join(base, "deadlinehub", "state.json")
}
