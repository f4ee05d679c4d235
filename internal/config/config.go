package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	UI      UIConfig
	CORS    CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// APIConfig points at the HR REST API
type APIConfig struct {
	BaseURL string
}

type SessionConfig struct {
	Secret        string
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

type UIConfig struct {
	DefaultPageSize int
	PageSizeOptions []int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.API = APIConfig{
		BaseURL: getEnv("API_BASE_URL", ""),
	}

	// Session configuration
	idleTimeout, err := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TIMEOUT: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("SESSION_SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		Secret:        getEnv("SESSION_SECRET", ""),
		IdleTimeout:   idleTimeout,
		SweepInterval: sweepInterval,
	}

	// UI configuration
	pageSize, err := strconv.Atoi(getEnv("UI_DEFAULT_PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid UI_DEFAULT_PAGE_SIZE: %w", err)
	}
	pageSizes, err := getEnvInts("UI_PAGE_SIZE_OPTIONS", "5,10,20,50")
	if err != nil {
		return nil, fmt.Errorf("invalid UI_PAGE_SIZE_OPTIONS: %w", err)
	}

	config.UI = UIConfig{
		DefaultPageSize: pageSize,
		PageSizeOptions: pageSizes,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if len(c.UI.PageSizeOptions) == 0 {
		return fmt.Errorf("UI_PAGE_SIZE_OPTIONS is required")
	}
	for _, size := range c.UI.PageSizeOptions {
		if size <= 0 {
			return fmt.Errorf("UI_PAGE_SIZE_OPTIONS must be positive, got %d", size)
		}
	}
	if !slices.Contains(c.UI.PageSizeOptions, c.UI.DefaultPageSize) {
		return fmt.Errorf("UI_DEFAULT_PAGE_SIZE %d is not one of UI_PAGE_SIZE_OPTIONS", c.UI.DefaultPageSize)
	}
	return nil
}

// IsProduction reports whether cookies should be marked secure.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func getEnvInts(key, fallback string) ([]int, error) {
	var result []int
	for _, part := range getEnvSlice(key, fallback) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
