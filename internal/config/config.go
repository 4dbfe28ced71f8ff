package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	// Path is the sqlite database file location.
	Path string `yaml:"path"`

	// LogLevel controls query logging: silent, error, warn or info.
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	// SecretKey signs access tokens. Must be overridden in production.
	SecretKey string `yaml:"secret_key"`

	// AccessTokenTTLMinutes bounds the lifetime of issued access tokens.
	AccessTokenTTLMinutes int `yaml:"access_token_ttl_minutes"`

	// RefreshTokenTTLDays bounds the lifetime of issued refresh tokens.
	RefreshTokenTTLDays int `yaml:"refresh_token_ttl_days"`
}

type KakaoConfig struct {
	// UserInfoURL is the Kakao profile endpoint; overridable for tests.
	UserInfoURL string `yaml:"user_info_url"`
}

type ReminderConfig struct {
	Enabled bool `yaml:"enabled"`

	// Cron is a cron-style schedule for the daily reminder sweep.
	Cron string `yaml:"cron"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// Timezone is the IANA timezone used for date handling (e.g. "Asia/Seoul").
	Timezone string `yaml:"timezone"`

	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Kakao    KakaoConfig    `yaml:"kakao"`
	Reminder ReminderConfig `yaml:"reminder"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		Timezone: "Asia/Seoul",
		Database: DatabaseConfig{Path: "data/growin.db", LogLevel: "warn"},
		Auth: AuthConfig{
			SecretKey:             "change_me_in_production",
			AccessTokenTTLMinutes: 30,
			RefreshTokenTTLDays:   14,
		},
		Kakao: KakaoConfig{UserInfoURL: "https://kapi.kakao.com/v2/user/me"},
		Reminder: ReminderConfig{
			Enabled: true,
			Cron:    "0 9 * * *",
		},
		Log: LogConfig{Level: "info", Pretty: false},
	}
}

// Normalize fills in missing/zero values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	defaults := Default()
	if c.Listen == "" {
		c.Listen = defaults.Listen
	}
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}
	if c.Database.Path == "" {
		c.Database.Path = defaults.Database.Path
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = defaults.Database.LogLevel
	}
	if c.Auth.SecretKey == "" {
		c.Auth.SecretKey = defaults.Auth.SecretKey
	}
	if c.Auth.AccessTokenTTLMinutes <= 0 {
		c.Auth.AccessTokenTTLMinutes = defaults.Auth.AccessTokenTTLMinutes
	}
	if c.Auth.RefreshTokenTTLDays <= 0 {
		c.Auth.RefreshTokenTTLDays = defaults.Auth.RefreshTokenTTLDays
	}
	if c.Kakao.UserInfoURL == "" {
		c.Kakao.UserInfoURL = defaults.Kakao.UserInfoURL
	}
	if c.Reminder.Cron == "" {
		c.Reminder.Cron = defaults.Reminder.Cron
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist, and applies environment overrides last.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if value := os.Getenv("PORT"); value != "" {
		c.Listen = ":" + value
	}
	if value := os.Getenv("TZ"); value != "" {
		c.Timezone = value
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		c.Database.Path = value
	}
	if value := os.Getenv("SECRET_KEY"); value != "" {
		c.Auth.SecretKey = value
	}
	if value := os.Getenv("KAKAO_USER_INFO_URL"); value != "" {
		c.Kakao.UserInfoURL = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		c.Log.Level = value
	}
	if value := os.Getenv("REMINDER_ENABLED"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			c.Reminder.Enabled = enabled
		}
	}
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenTTLMinutes) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.Auth.RefreshTokenTTLDays) * 24 * time.Hour
}
