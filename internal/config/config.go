package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// HTTP server timeouts, in seconds
	WriteTimeoutSec    int
	ShutdownTimeoutSec int

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment.
// A missing GEMINI_API_KEY is not an error; analyze requests fail until it is set.
func Load() (*Config, error) {
	// Real env vars take precedence over .env
	loadEnvFile(".env")

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),

		// Model calls routinely take longer than a typical API write timeout
		WriteTimeoutSec:    getEnvInt("WRITE_TIMEOUT_SECONDS", 120),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}

	return cfg, nil
}

// HasGeminiKey reports whether the upstream credential is configured
func (c *Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != ""
}

// MaskedGeminiKey returns the first four characters of the key for startup logs
func (c *Config) MaskedGeminiKey() string {
	if len(c.GeminiAPIKey) <= 4 {
		return c.GeminiAPIKey + "..."
	}
	return c.GeminiAPIKey[:4] + "..."
}

// loadEnvFile loads a .env file if one exists.
// Silently skips if the file doesn't exist (production uses real env vars).
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
