package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Development bool
	// API configuration, 0 disables the operational HTTP server
	APIPort int

	// Telegram configuration
	BotToken string

	// Vybe API configuration
	VybeAPIKey string
	VybeAPIURL string
	VybeTxPath string

	// ExplorerTxURL is the prefix transaction signatures are appended to in notifications
	ExplorerTxURL string

	// Polling configuration
	PollInterval time.Duration
	InitialDelay time.Duration
	FetchTimeout time.Duration
	// SeedOnFirstSight stores the first transaction seen for a wallet without notifying
	SeedOnFirstSight bool
}

// LoadConfig loads the configuration from environment variables and validates it
func LoadConfig() (*Config, error) {
	cfg := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv reads the configuration from the environment (and an optional
// .env file) without validating it, so callers can apply overrides first.
func LoadFromEnv() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Development:      getEnvAsBool("DEVELOPMENT", false),
		APIPort:          getEnvAsInt("API_PORT", 6532),
		BotToken:         getEnv("BOT_TOKEN", ""),
		VybeAPIKey:       getEnv("VYBE_API_KEY", ""),
		VybeAPIURL:       getEnv("VYBE_API_URL", "https://api.vybe.xyz/v1/solana"),
		VybeTxPath:       getEnv("VYBE_TX_PATH", "txs"),
		ExplorerTxURL:    getEnv("EXPLORER_TX_URL", "https://solscan.io/tx"),
		PollInterval:     getEnvAsDuration("POLL_INTERVAL", 60*time.Second),
		InitialDelay:     getEnvAsDuration("INITIAL_DELAY", 5*time.Second),
		FetchTimeout:     getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		SeedOnFirstSight: getEnvAsBool("SEED_ON_FIRST_SIGHT", false),
	}
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	if c.VybeAPIKey == "" {
		return fmt.Errorf("VYBE_API_KEY is required")
	}

	if c.VybeAPIURL == "" {
		return fmt.Errorf("VYBE_API_URL is required")
	}
	if u, err := url.Parse(c.VybeAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid VYBE_API_URL: %q", c.VybeAPIURL)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}

	if c.InitialDelay < 0 {
		return fmt.Errorf("INITIAL_DELAY must not be negative, got %s", c.InitialDelay)
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}

	if c.APIPort < 0 || c.APIPort > 65535 {
		return fmt.Errorf("API_PORT out of range: %d", c.APIPort)
	}

	return nil
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s", "2m") or a bare number of seconds.
func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
		if secs, err := strconv.Atoi(valueStr); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
