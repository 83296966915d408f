/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures server parameters by reading operating system environment variables,
including the running environment, port, CORS allowed origins, the announcement
source path, and rate limiting knobs for the abuse-prone routes.
*/
package configs

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Port        int    `envconfig:"PORT" default:"8080"`

	// Security Settings
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	// Announcement Settings
	AnnouncementPath string `envconfig:"ANNOUNCEMENT_PATH" default:"announcement.txt"`

	// Rate Limiting Settings (events per second and burst size)
	RegisterRate  float64 `envconfig:"REGISTER_RATE" default:"0.2"`
	RegisterBurst int     `envconfig:"REGISTER_BURST" default:"5"`
	CreateRate    float64 `envconfig:"CREATE_RATE" default:"0.05"`
	CreateBurst   int     `envconfig:"CREATE_BURST" default:"2"`
}

// LoadConfig reads and parses the application configuration from environment variables.
// It applies the struct tag defaults and performs post-load validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment configuration: %w", err)
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	if cfg.AnnouncementPath == "" {
		return nil, fmt.Errorf("ANNOUNCEMENT_PATH must not be empty")
	}

	return cfg, nil
}
