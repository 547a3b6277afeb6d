// Package config loads widgetlab settings from an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv overrides the config file location.
	ConfigEnv = "WIDGETLAB_CONFIG"
	// LogFileEnv overrides log_file.
	LogFileEnv = "WIDGETLAB_LOG_FILE"
	// EndpointEnv overrides telemetry.endpoint.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides telemetry.service_name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultConfigPath is relative to the user config dir.
	DefaultConfigPath = "widgetlab/config.yaml"
)

// Tabs lists the valid start_tab values, in display order.
var Tabs = []string{"heading", "counter", "callbacks", "favourite", "list", "async"}

// Config holds the application settings.
type Config struct {
	LogFile   string    `yaml:"log_file"`
	StartTab  string    `yaml:"start_tab"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures the OTLP trace exporter.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		StartTab: "heading",
		Telemetry: Telemetry{
			ServiceName: "widgetlab",
			Insecure:    true,
		},
	}
}

// Path resolves the config file location: explicit path, then
// WIDGETLAB_CONFIG, then the user config dir.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, DefaultConfigPath), nil
}

// Load reads the file at path on top of Default, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(LogFileEnv); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EndpointEnv); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv(ServiceNameEnv); v != "" {
		c.Telemetry.ServiceName = v
	}
}

// Validate checks start_tab against Tabs.
func (c Config) Validate() error {
	if c.StartTab == "" {
		return nil
	}
	for _, t := range Tabs {
		if strings.EqualFold(c.StartTab, t) {
			return nil
		}
	}
	return fmt.Errorf("start_tab %q: must be one of %s", c.StartTab, strings.Join(Tabs, ", "))
}
