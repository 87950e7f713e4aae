// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// StoreConfig provides settings for the merchant metadata store backend.
type StoreConfig interface {
	GetStoreBackend() string
	GetRedisURL() string
}

// MerchantConfig provides settings needed by the merchant module.
type MerchantConfig interface {
	GetMaxLogoBytes() int
	GetPublicBaseURL() string
}

// MetadataConfig provides settings needed by the NFT metadata module.
type MetadataConfig interface {
	GetPublicBaseURL() string
}

// Store backend identifiers. The backend is chosen once at process start and
// never re-evaluated per call.
const (
	StoreBackendDurable = "durable"
	StoreBackendMemory  = "memory"
)

// DefaultMaxLogoBytes caps the decoded size of a merchant logo (500 KiB).
const DefaultMaxLogoBytes = 500 * 1024

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env           string
	HTTPAddr      string
	StoreBackend  string
	RedisURL      string
	MaxLogoBytes  int
	PublicBaseURL string
	CORSAllowAll  bool
	CORSOrigins   []string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// StoreConfig implementation
func (c *Config) GetStoreBackend() string { return c.StoreBackend }
func (c *Config) GetRedisURL() string     { return c.RedisURL }

// MerchantConfig / MetadataConfig implementation
func (c *Config) GetMaxLogoBytes() int     { return c.MaxLogoBytes }
func (c *Config) GetPublicBaseURL() string { return c.PublicBaseURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisURL := getEnv("REDIS_URL", "")

	// Explicit STORE_BACKEND wins; otherwise the presence of a Redis
	// connection string selects the durable backend.
	backend := strings.ToLower(getEnv("STORE_BACKEND", ""))
	if backend == "" {
		if redisURL != "" {
			backend = StoreBackendDurable
		} else {
			backend = StoreBackendMemory
		}
	}

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		StoreBackend:  backend,
		RedisURL:      redisURL,
		MaxLogoBytes:  mustInt(getEnv("MAX_LOGO_BYTES", strconv.Itoa(DefaultMaxLogoBytes))),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://nft-sub.vercel.app"), "/"),
		CORSAllowAll:  corsAllowAll,
		CORSOrigins:   corsOrigins,
	}

	if cfg.StoreBackend != StoreBackendDurable && cfg.StoreBackend != StoreBackendMemory {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", cfg.StoreBackend, StoreBackendDurable, StoreBackendMemory)
	}
	if cfg.StoreBackend == StoreBackendDurable && cfg.RedisURL == "" {
		return nil, fmt.Errorf("STORE_BACKEND=%s requires REDIS_URL", StoreBackendDurable)
	}
	if cfg.MaxLogoBytes <= 0 {
		return nil, fmt.Errorf("MAX_LOGO_BYTES must be a positive integer")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
