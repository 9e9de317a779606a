// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the analysis configuration. It is read once at startup and passed to the
// components that need it.
type Config struct {
	LogLevel      string
	EchoTimestamp bool
	NoColor       bool
	Extractor     string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv(), nil
}

// LoadEnvFile loads the given env file. A missing default .env file is not an error.
func LoadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// If it's the default .env file and it doesn't exist, that's okay
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

// FromEnv builds a Config from the current environment without reading any file.
func FromEnv() *Config {
	return &Config{
		LogLevel:      getEnv(EnvLogLevel, DefaultLogLevel),
		EchoTimestamp: getEnv(EnvEchoTimestamp, "") == "1",
		NoColor:       getEnv(EnvNoColor, "") == "1",
		Extractor:     getEnv(EnvExtractor, ""),
	}
}

// Timestamp returns the line prefix for t, empty unless timestamps are echoed.
func (c *Config) Timestamp(t time.Time) string {
	if !c.EchoTimestamp {
		return ""
	}

	return "[" + t.Format(TimestampFormat) + "] "
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	extractorDisplay := c.Extractor
	if extractorDisplay == "" {
		extractorDisplay = "(not set)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Log Level:                %s
Echo Timestamps:          %t
Colors Disabled:          %t
Default Extractor:        %s`,
		c.LogLevel,
		c.EchoTimestamp,
		c.NoColor,
		extractorDisplay,
	)
}
