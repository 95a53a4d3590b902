package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP server
	ListenAddr string

	// Game configuration
	StartingChips int64 // Balance created for first-time clients
	HistoryLimit  int   // Max game records returned per history query

	// AI advisor (optional; recommendations are disabled without a key)
	GeminiAPIKey string
	GeminiModel  string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the environment, with a .env file as a
// fallback source for local development.
func load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ListenAddr:  os.Getenv("LISTEN_ADDR"),

		// Defaults
		StartingChips: 500,
		HistoryLimit:  50,

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.GeminiModel == "" {
		config.GeminiModel = "gemini-2.5-flash"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	// Override defaults if environment variables are set
	if chips := os.Getenv("STARTING_CHIPS"); chips != "" {
		parsed, err := strconv.ParseInt(chips, 10, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid STARTING_CHIPS value %q", chips)
		}
		config.StartingChips = parsed
	}
	if limit := os.Getenv("HISTORY_LIMIT"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid HISTORY_LIMIT value %q", limit)
		}
		config.HistoryLimit = parsed
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
