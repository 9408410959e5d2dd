package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Model artifacts
	ArtifactsDir string // Directory holding columns.json and the model file

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" allows any origin

	// Rate limiting
	RateLimitMax int    // Requests per minute per client IP, 0 disables the limiter
	RedisURL     string // Shared limiter storage; empty keeps counters in memory

	// Logging
	LogLevel string // debug, info, warn, error
	LogFile  string // Optional rotating log file, in addition to stdout

	// Metrics
	MetricsEnabled bool

	// Dashboard
	ConfigFile string // YAML file with dashboard settings
	SiteTitle  string // env: SITE_TITLE, default: "Delhi House Price Predictor"
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file in the working directory are applied first; real
// environment variables win over them.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":"+getEnv("PORT", "5000")),
		ArtifactsDir:   getEnv("ARTIFACTS_DIR", "artifacts"),
		TLSEnabled:     getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:       getEnv("REDIS_URL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		ConfigFile:     getEnv("CONFIG_FILE", "config.yaml"),
		SiteTitle:      getEnv("SITE_TITLE", "Delhi House Price Predictor"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins splits CORSOrigins into a list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
