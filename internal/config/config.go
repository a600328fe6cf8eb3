package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Optional; enables the shared inbound limiter and readiness ping
	RedisURL string

	// PUBG API
	PubgAPIKey            string
	PubgBaseURL           string
	PubgTimeout           time.Duration
	PubgRequestsPerMinute int

	// Worker pool
	WorkerCount int
	QueueSize   int

	// Dashboard sessions
	SessionTTL time.Duration

	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int
}

// LoadDotEnv reads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		RedisURL: getEnv("REDIS_URL", ""),

		PubgBaseURL:           getEnv("PUBG_BASE_URL", "https://api.pubg.com/shards"),
		PubgTimeout:           getEnvDuration("PUBG_TIMEOUT", 10*time.Second),
		PubgRequestsPerMinute: getEnvInt("PUBG_REQUESTS_PER_MINUTE", 10),

		WorkerCount: getEnvInt("WORKER_COUNT", 4),
		QueueSize:   getEnvInt("QUEUE_SIZE", 256),

		SessionTTL: getEnvDuration("SESSION_TTL", 30*time.Minute),

		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 10),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PubgAPIKey, err = getEnvRequired("PUBG_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
