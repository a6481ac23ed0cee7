package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"wemetstudio/internal/domain"
)

// Catalog sources.
const (
	CatalogSourceStatic = "static"
	CatalogSourceHTTP   = "http"
)

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	CORSAllowedOrigins []string

	CatalogSource  string
	CatalogURL     string
	CatalogTimeout time.Duration

	StudioLocation       *time.Location
	CalendarDefaultDate  domain.Day
	NotificationDuration time.Duration

	SessionSecret        string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	Mail MailConfig
}

// MailConfig configures delivery of booking requests to the studio.
type MailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	StudioAddress      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}
	return FromEnv(env, os.Getenv)
}

// FromEnv builds a Config from getenv. Unset variables take their defaults;
// malformed durations, dates and time zones are errors.
func FromEnv(env string, getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Environment:        env,
		Port:               get("PORT", "8080"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		CatalogSource:      strings.ToLower(get("CATALOG_SOURCE", CatalogSourceStatic)),
		CatalogURL:         get("CATALOG_URL", ""),
		SessionSecret:      get("SESSION_SECRET", ""),
		Mail: MailConfig{
			Provider:           strings.ToLower(get("MAIL_PROVIDER", "noop")),
			FromAddress:        get("MAIL_FROM_ADDRESS", ""),
			FromName:           get("MAIL_FROM_NAME", "WE MET"),
			StudioAddress:      get("STUDIO_BOOKING_EMAIL", ""),
			AWSRegion:          get("AWS_REGION", ""),
			AWSAccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			AWSSecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
		},
	}

	var err error
	if cfg.CatalogTimeout, err = parseDuration("CATALOG_TIMEOUT", get("CATALOG_TIMEOUT", "5s")); err != nil {
		return nil, err
	}
	if cfg.NotificationDuration, err = parseDuration("NOTIFICATION_DURATION", get("NOTIFICATION_DURATION", "2s")); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", get("SESSION_TTL", "24h")); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = parseDuration("SESSION_SWEEP_INTERVAL", get("SESSION_SWEEP_INTERVAL", "1m")); err != nil {
		return nil, err
	}

	tz := get("STUDIO_TIMEZONE", "Asia/Jerusalem")
	if cfg.StudioLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("STUDIO_TIMEZONE: %w", err)
	}
	if cfg.CalendarDefaultDate, err = domain.ParseDay(get("CALENDAR_DEFAULT_DATE", "2025-10-06")); err != nil {
		return nil, fmt.Errorf("CALENDAR_DEFAULT_DATE: %w", err)
	}
	if s := getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		if cfg.Mail.InsecureSkipVerify, err = strconv.ParseBool(s); err != nil {
			return nil, fmt.Errorf("SES_INSECURE_SKIP_VERIFY: %w", err)
		}
	}

	switch cfg.CatalogSource {
	case CatalogSourceStatic:
	case CatalogSourceHTTP:
		if cfg.CatalogURL == "" {
			return nil, fmt.Errorf("CATALOG_URL is required when CATALOG_SOURCE is %q", CatalogSourceHTTP)
		}
	default:
		return nil, fmt.Errorf("CATALOG_SOURCE: unknown source %q", cfg.CatalogSource)
	}

	if cfg.SessionSecret == "" {
		if env == "production" {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		cfg.SessionSecret = "dev-session-secret"
	}
	return cfg, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
