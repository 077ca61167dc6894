package main

import (
	"eformify-backend/lib/configutil"
	"errors"
	"log/slog"
	"os"
)

type HttpConfig struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type AuthSmtpConfig struct {
	Server        string `json:"server"`
	Port          int    `json:"port"`
	EmailAddress  string `json:"email_address"`
	Password      string `json:"password"`
	NotifyAddress string `json:"notify_address"`
}

type AuthConfig struct {
	TokenTTLHours int            `json:"token_ttl_hours"`
	Smtp          AuthSmtpConfig `json:"smtp"`
}

type ScrapeConfig struct {
	TimeoutSeconds   int    `json:"timeout_seconds"`
	UserAgent        string `json:"user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

type FormsConfig struct {
	FilesDir string `json:"files_dir"`
}

type Config struct {
	Http HttpConfig `json:"http"`
	// a sqlite file path (may start with <dev_state>) or a libsql url
	Database string       `json:"database"`
	Timezone string       `json:"timezone"`
	Auth     AuthConfig   `json:"auth"`
	Scrape   ScrapeConfig `json:"scrape"`
	Forms    FormsConfig  `json:"forms"`
}

var defaultConfig = Config{
	Http: HttpConfig{
		Port:           8000,
		AllowedOrigins: []string{"http://localhost:3000"},
	},
	Database: "<dev_state>/eformify.db",
	Timezone: "UTC",
	Scrape: ScrapeConfig{
		TimeoutSeconds: 10,
	},
	Forms: FormsConfig{
		FilesDir: "files",
	},
}

// ReadConfig reads the config at `path`, a missing file means running with
// the defaults.
func ReadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "path", path)
		return defaultConfig, nil
	}
	if err != nil {
		return Config{}, err
	}
	return configutil.WithDefaults(cfg, defaultConfig)
}
