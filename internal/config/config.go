// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/log"
)

const defaultAPIToken = "dev-token"

// Config holds the server configuration
type Config struct {
	// gRPC server
	GRPCAddr        string
	APIToken        string
	ShutdownTimeout time.Duration

	// Dataset document used to seed the in-memory store; empty starts empty
	DataFile string

	// Net worth currency when a request does not name one
	Currency domain.Currency

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads the configuration. A .env file in the working directory is
// applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GRPCAddr:        getEnv("GRPC_ADDR", ":8080"),
		APIToken:        getEnv("API_TOKEN", defaultAPIToken),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DataFile:        getEnv("DATA_FILE", ""),
		Currency:        domain.Currency(strings.ToUpper(getEnv("NET_WORTH_CURRENCY", string(domain.CashCurrency)))),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, _, err := net.SplitHostPort(c.GRPCAddr); err != nil {
		errors = append(errors, fmt.Sprintf("invalid gRPC address '%s': %v", c.GRPCAddr, err))
	}

	if c.APIToken == "" {
		errors = append(errors, "API token cannot be empty")
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if c.DataFile != "" {
		if _, err := os.Stat(c.DataFile); err != nil {
			errors = append(errors, fmt.Sprintf("data file '%s' is not readable: %v", c.DataFile, err))
		}
	}

	if c.Currency != domain.EUR && c.Currency != domain.RON {
		errors = append(errors, fmt.Sprintf("invalid net worth currency '%s': must be EUR or RON", c.Currency))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// Logger builds the root logger described by the configuration.
// Call after Validate.
func (c *Config) Logger() *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	cfg := log.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.LogFormat
	return log.New(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
