// Package config loads application configuration from environment variables,
// with an optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all settings for one batch run.
type Config struct {
	Files   FilesConfig
	Storage StorageConfig
	Logging LoggingConfig
}

// FilesConfig names the input/output files and the asset columns of the
// clients file.
type FilesConfig struct {
	Clients string
	Orders  string
	Result  string
	Symbols []string
}

// StorageConfig wires the optional trade journal and snapshot cache.
// Empty values leave the corresponding adapter disabled.
type StorageConfig struct {
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Files: FilesConfig{
			Clients: getEnvString("TRADEMATCH_CLIENTS_FILE", "Clients.txt"),
			Orders:  getEnvString("TRADEMATCH_ORDERS_FILE", "Orders.txt"),
			Result:  getEnvString("TRADEMATCH_RESULT_FILE", "Result.txt"),
			Symbols: getEnvList("TRADEMATCH_ASSETS", []string{"A", "B", "C", "D"}),
		},
		Storage: StorageConfig{
			PostgresDSN:   getEnvString("TRADEMATCH_POSTGRES_DSN", ""),
			RedisAddr:     getEnvString("TRADEMATCH_REDIS_ADDR", ""),
			RedisPassword: getEnvString("TRADEMATCH_REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("TRADEMATCH_REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level:  getEnvString("TRADEMATCH_LOG_LEVEL", "info"),
			Format: getEnvString("TRADEMATCH_LOG_FORMAT", "console"),
		},
	}
	return cfg, nil
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	if c.Files.Clients == "" {
		return fmt.Errorf("clients file path is required")
	}
	if c.Files.Orders == "" {
		return fmt.Errorf("orders file path is required")
	}
	if c.Files.Result == "" {
		return fmt.Errorf("result file path is required")
	}
	if len(c.Files.Symbols) == 0 {
		return fmt.Errorf("at least one asset symbol is required")
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
