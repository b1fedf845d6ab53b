package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Documented defaults, matching the CLI help text.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 5000
	DefaultExternalURL = "http://localhost:5000"
	DefaultAPIKey      = "mock_api_key"
)

// Config holds the resolved server configuration. It is built once at
// startup and never mutated afterwards.
type Config struct {
	// Server configuration
	Host string
	Port int

	// ExternalURL is the address clients reach the server on; it is used
	// verbatim when building download and details links.
	ExternalURL string

	// APIKey is the shared secret checked on every request.
	APIKey string

	// Storage configuration
	NZBDir      string
	CatalogPath string
}

// FromEnv builds a Config from NZBMOCK_* environment variables, falling
// back to the documented defaults. Flag values are applied on top by the
// command layer.
func FromEnv() *Config {
	return &Config{
		Host:        getEnvOrDefault("NZBMOCK_HOST", DefaultHost),
		Port:        getEnvIntOrDefault("NZBMOCK_PORT", DefaultPort),
		ExternalURL: getEnvOrDefault("NZBMOCK_EXTERNAL_URL", DefaultExternalURL),
		APIKey:      getEnvOrDefault("NZBMOCK_API_KEY", DefaultAPIKey),
		NZBDir:      os.Getenv("NZBMOCK_NZB_PATH"),
		CatalogPath: os.Getenv("NZBMOCK_NZB_CONFIG"),
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that the configuration is complete. The NZB directory
// must exist up front; individual files inside it are only checked when a
// download is requested.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ExternalURL == "" {
		return fmt.Errorf("external URL is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.NZBDir == "" {
		return fmt.Errorf("NZB directory path is required")
	}
	info, err := os.Stat(c.NZBDir)
	if err != nil {
		return fmt.Errorf("NZB directory %q is not accessible: %w", c.NZBDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("NZB path %q is not a directory", c.NZBDir)
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog file path is required")
	}
	return nil
}

// ExternalHost returns the host part of the external URL, used for the
// feed's webMaster address.
func (c *Config) ExternalHost() string {
	host := strings.TrimPrefix(c.ExternalURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
