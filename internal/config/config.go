package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port   string
	AppEnv string

	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	SessionTTL    time.Duration

	CacheTTL       time.Duration
	ResyncSchedule string
	AllowedOrigins []string

	SiteContentPath string
	ContactTopic    string

	Firebase FirebaseConfig
}

type FirebaseConfig struct {
	ServiceAccountPath string
	ProjectID          string
	DatabaseURL        string
	ProfileDocID       string
	AdminUID           string
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset.
func Load() (*Config, error) {
	cacheTTL, err := durationEnv("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := durationEnv("ADMIN_SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:   getEnvOrDefault("PORT", "9091"),
		AppEnv: getEnvOrDefault("APP_ENV", "production"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    sessionTTL,

		CacheTTL:       cacheTTL,
		ResyncSchedule: getEnvOrDefault("RESYNC_SCHEDULE", "@every 1m"),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		SiteContentPath: getEnvOrDefault("SITE_CONTENT_PATH", "config/site.yaml"),
		ContactTopic:    getEnvOrDefault("CONTACT_TOPIC", "contact-messages"),

		Firebase: FirebaseConfig{
			ServiceAccountPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
			ProjectID:          os.Getenv("FIREBASE_PROJECT_ID"),
			DatabaseURL:        os.Getenv("FIREBASE_DATABASE_URL"),
			ProfileDocID:       os.Getenv("FIREBASE_PROFILE_DOC_ID"),
			AdminUID:           getEnvOrDefault("FIREBASE_ADMIN_UID", "portfolio-admin"),
		},
	}

	if cfg.Firebase.DatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// IsDevelopment reports whether the server runs with development logging.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
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
