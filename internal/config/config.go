package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppSettings
	Stats    StatsConfig
}

// DatabaseConfig holds banking database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// RedisConfig holds the optional quote cache configuration.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AppSettings holds application-level limits
type AppSettings struct {
	ItemsPerPage         int
	MaxTransactionAmount float64
}

// StatsConfig holds dashboard snapshot refresh configuration
type StatsConfig struct {
	RefreshCron string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Redis:    loadRedisConfig(),
		App:      loadAppSettings(),
		Stats:    loadStatsConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "bms_banking"),
	}
}

// loadRedisConfig loads the quote cache config
func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

// loadAppSettings loads application-level limits
func loadAppSettings() AppSettings {
	itemsPerPage, _ := strconv.Atoi(getEnv("ITEMS_PER_PAGE", "20"))
	maxTxn, _ := strconv.ParseFloat(getEnv("MAX_TRANSACTION_AMOUNT", "1000000"), 64)

	if itemsPerPage < 1 {
		itemsPerPage = 20
	}
	if maxTxn <= 0 {
		maxTxn = 1000000
	}

	return AppSettings{
		ItemsPerPage:         itemsPerPage,
		MaxTransactionAmount: maxTxn,
	}
}

// loadStatsConfig loads dashboard snapshot refresh config
func loadStatsConfig() StatsConfig {
	return StatsConfig{
		RefreshCron: getEnv("STATS_REFRESH_CRON", "*/5 * * * *"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// CacheEnabled returns true if the Redis quote cache is configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://banking.dubey-bms.com"
	}
	return origins
}
