package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// StorageConfig points at the image storage endpoint.
type StorageConfig struct {
	BaseURL    string
	Bucket     string
	ServiceKey string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	Port               string
	TokenTTL           time.Duration
	Storage            StorageConfig
	DefaultPhoneRegion string
	RateLimitSubmit    RateLimitConfig
	RateLimitClicks    RateLimitConfig
	ClickLogTimeout    time.Duration
	MaxUploadBytes     int64
	CORSAllowOrigins   []string
	TrustedProxies     []string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		Port:        getEnv("PORT", "8080"),
		TokenTTL:    parseDuration(getEnv("JWT_TTL", "24h"), 24*time.Hour),
		Storage: StorageConfig{
			BaseURL:    strings.TrimRight(getEnv("STORAGE_BASE_URL", "http://storage:9000"), "/"),
			Bucket:     getEnv("STORAGE_BUCKET", "listing-images"),
			ServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		},
		DefaultPhoneRegion: strings.ToUpper(getEnv("DEFAULT_PHONE_REGION", "RW")),
		ClickLogTimeout:    parseDuration(getEnv("CLICK_LOG_TIMEOUT", "1500ms"), 1500*time.Millisecond),
		MaxUploadBytes:     parseInt64(getEnv("MAX_UPLOAD_BYTES", "5242880"), 5<<20),
		CORSAllowOrigins:   parseList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
	}

	submit, err := parseRateLimit(getEnv("RATE_LIMIT_SUBMIT", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMIT value: %w", err)
	}
	cfg.RateLimitSubmit = submit

	clicks, err := parseRateLimit(getEnv("RATE_LIMIT_CLICKS", "60/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CLICKS value: %w", err)
	}
	cfg.RateLimitClicks = clicks

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt64(input string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
