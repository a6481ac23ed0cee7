package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wemetstudio/internal/domain"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv("development", envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CatalogSourceStatic, cfg.CatalogSource)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 2*time.Second, cfg.NotificationDuration)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "Asia/Jerusalem", cfg.StudioLocation.String())
	assert.Equal(t, domain.Day{Year: 2025, Month: time.October, Day: 6}, cfg.CalendarDefaultDate)
	assert.Equal(t, "noop", cfg.Mail.Provider)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv("production", envFrom(map[string]string{
		"PORT":                     "9090",
		"CORS_ALLOWED_ORIGINS":     "https://wemet.example, http://localhost:5173/ ,",
		"CATALOG_SOURCE":           "HTTP",
		"CATALOG_URL":              "https://cms.wemet.example/api",
		"CATALOG_TIMEOUT":          "750ms",
		"STUDIO_TIMEZONE":          "UTC",
		"CALENDAR_DEFAULT_DATE":    "2026-01-15",
		"NOTIFICATION_DURATION":    "3s",
		"SESSION_SECRET":           "s3cret",
		"MAIL_PROVIDER":            "ses",
		"AWS_REGION":               "eu-central-1",
		"SES_INSECURE_SKIP_VERIFY": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://wemet.example", "http://localhost:5173/"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, CatalogSourceHTTP, cfg.CatalogSource)
	assert.Equal(t, 750*time.Millisecond, cfg.CatalogTimeout)
	assert.Equal(t, time.UTC, cfg.StudioLocation)
	assert.Equal(t, "2026-01-15", cfg.CalendarDefaultDate.String())
	assert.Equal(t, 3*time.Second, cfg.NotificationDuration)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "ses", cfg.Mail.Provider)
	assert.True(t, cfg.Mail.InsecureSkipVerify)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		vars map[string]string
	}{
		{"bad duration", "development", map[string]string{"CATALOG_TIMEOUT": "soon"}},
		{"negative duration", "development", map[string]string{"SESSION_TTL": "-1h"}},
		{"bad date", "development", map[string]string{"CALENDAR_DEFAULT_DATE": "06/10/2025"}},
		{"bad timezone", "development", map[string]string{"STUDIO_TIMEZONE": "Mars/Olympus"}},
		{"unknown catalog source", "development", map[string]string{"CATALOG_SOURCE": "ftp"}},
		{"http catalog without url", "development", map[string]string{"CATALOG_SOURCE": "http"}},
		{"bad bool", "development", map[string]string{"SES_INSECURE_SKIP_VERIFY": "maybe"}},
		{"production without secret", "production", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(tt.env, envFrom(tt.vars))
			assert.Error(t, err)
		})
	}
}
