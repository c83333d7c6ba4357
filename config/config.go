package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "development" or "release"
	DBUrl       string
	FrontendURL string
	// Auth mode selection: if JWTSecret is set the process verifies and
	// issues tokens locally. If it is empty, every bearer token is forwarded
	// to AuthPeerURL for verification and signup/login are proxied there.
	JWTSecret   string
	AuthPeerURL string
	// Refresh token cookie settings
	CookieDomain string
	CookieSecure bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Env:   getEnv("APP_ENV", "development"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Strip trailing slash to prevent double slashes when composing URLs
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		AuthPeerURL:  strings.TrimRight(getEnv("AUTH_PEER_URL", ""), "/"),
		CookieDomain: getEnv("COOKIE_DOMAIN", ""),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	// The auth mode is fixed for the process lifetime: either local (secret
	// present) or remote (peer URL present). It is never re-read per request.
	if cfg.JWTSecret == "" && cfg.AuthPeerURL == "" {
		log.Println("WARNING: Neither JWT_SECRET nor AUTH_PEER_URL configured. All authenticated requests will fail.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Login rate limiting is disabled.")
	}

	return cfg, nil
}

// LocalAuth reports whether this deployment verifies and issues tokens with
// its own signing secret. When false, token verification is delegated to the
// peer deployment at AuthPeerURL.
func (c *Config) LocalAuth() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
