package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// Auth modes accepted in UPSTREAM_AUTH_MODE.
const (
	AuthModeBearer = "bearer"
	AuthModeCookie = "cookie"
)

// Config holds application configuration values.
type Config struct {
	UpstreamBaseURL string
	AuthMode        string
	CacheStaleTime  time.Duration
	SessionFile     string
	UpstreamTimeout time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://stocai-blog-backend.onrender.com"),
		AuthMode:        getEnv("UPSTREAM_AUTH_MODE", AuthModeBearer),
		CacheStaleTime:  time.Minute * time.Duration(getEnvAsInt("CACHE_STALE_MINUTES", 5)),
		SessionFile:     getEnv("SESSION_FILE", filepath.Join(".state", "session")),
		UpstreamTimeout: time.Second * time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 30)),
	}
}

// GetUpstreamBaseURL returns the base URL of the upstream blog API.
func (c *Config) GetUpstreamBaseURL() string {
	return c.UpstreamBaseURL
}

// GetAuthMode returns the configured credential transport mode.
func (c *Config) GetAuthMode() string {
	return c.AuthMode
}

// GetCacheStaleTime returns the freshness window for cached reads.
func (c *Config) GetCacheStaleTime() time.Duration {
	return c.CacheStaleTime
}

// GetSessionFile returns the path of the persisted session credential.
func (c *Config) GetSessionFile() string {
	return c.SessionFile
}

// GetUpstreamTimeout returns the per-request timeout for upstream calls.
func (c *Config) GetUpstreamTimeout() time.Duration {
	return c.UpstreamTimeout
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
