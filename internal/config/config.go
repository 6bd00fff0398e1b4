package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultOutputDir      = "./storage"
	DefaultMaxWorkers     = 8
	DefaultMaxPerHost     = 4
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryBackoff   = 500 * time.Millisecond
	DefaultUserAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/98.0.4758.102 Safari/537.36"
)

type Config struct {
	LogMode        string
	ServerPort     string
	OutputDir      string
	MaxWorkers     int
	MaxPerHost     int
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	UpgradeHTTPS   bool
	UserAgent      string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
	})
	if err != nil {
		return err
	}

	return nil
}

func stringToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func intOrDefault(key string, def int) int {
	n := stringToInt(os.Getenv(key))
	if n <= 0 {
		return def
	}

	return n
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return def, nil
	}

	return d, nil
}

func stringOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func LoadConfig(envPath string) (*Config, error) {
	err := godotenv.Load(envPath)
	if err != nil {
		return nil, fmt.Errorf("load cofiguration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	requestTimeout, err := durationOrDefault("REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	retryBackoff, err := durationOrDefault("RETRY_BACKOFF", DefaultRetryBackoff)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	upgradeHTTPS := false
	if raw := os.Getenv("UPGRADE_HTTPS"); raw != "" {
		upgradeHTTPS, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("LoadConfig: parse UPGRADE_HTTPS: %w", err)
		}
	}

	return &Config{
		LogMode:        os.Getenv("LOG_MODE"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		OutputDir:      stringOrDefault("OUTPUT_DIR", DefaultOutputDir),
		MaxWorkers:     intOrDefault("MAX_WORKERS", DefaultMaxWorkers),
		MaxPerHost:     intOrDefault("MAX_PER_HOST", DefaultMaxPerHost),
		RequestTimeout: requestTimeout,
		MaxRetries:     max(stringToInt(os.Getenv("MAX_RETRIES")), 0),
		RetryBackoff:   retryBackoff,
		UpgradeHTTPS:   upgradeHTTPS,
		UserAgent:      stringOrDefault("USER_AGENT", DefaultUserAgent),
	}, nil
}
