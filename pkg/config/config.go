package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Session SessionConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
	// StaticDir is the built single-page client. Empty or missing dir disables static serving.
	StaticDir string
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig snapshot persistence settings.
// Backend selects the snapshot medium: "file", "sqlite", "postgres" or "memory".
// Path is the snapshot file (file backend) or database file (sqlite backend).
// DatabaseURL is the postgres connection string (postgres backend only).
type StorageConfig struct {
	Backend     string
	Path        string
	DatabaseURL string
}

// SMTPConfig outbound mail settings. An empty Host disables delivery receipts.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether outbound mail is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// SessionConfig login session settings.
type SessionConfig struct {
	CookieName string
	TTLHours   int
}

// Load reads configuration from environment variables (and optionally from a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, STORAGE_BACKEND, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error if missing

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore error if missing

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "parts-tracker"),
		},
		HTTP: HTTPConfig{
			Host:      getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:      getInt(v, "HTTP_PORT", 3000),
			StaticDir: getString(v, "STATIC_DIR", "./client/dist"),
		},
		Storage: StorageConfig{
			Backend:     getString(v, "STORAGE_BACKEND", "file"),
			Path:        getString(v, "STORAGE_PATH", "./data/parts-tracker.json"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", ""),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE", "parts_tracker_session"),
			TTLHours:   getInt(v, "SESSION_TTL_HOURS", 24),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
