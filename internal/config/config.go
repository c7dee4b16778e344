package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"

	LedgerDriverMemory   = "memory"
	LedgerDriverPostgres = "postgres"
)

type Config struct {
	App         AppConfig
	JWT         JWTConfig
	Session     SessionConfig
	Redis       RedisConfig
	Ledger      LedgerConfig
	Database    DatabaseConfig
	Timekeeping TimekeepingConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	Timezone    string
	FrontendURL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// SessionConfig selects where the kiosk session keys live
type SessionConfig struct {
	Driver    string
	KeyPrefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LedgerConfig selects the time record ledger backend
type LedgerConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

type TimekeepingConfig struct {
	ClockInterval time.Duration
	FixturesPath  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("APP_TIMEZONE", "Africa/Johannesburg"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	// Session configuration
	config.Session = SessionConfig{
		Driver:    strings.ToLower(getEnv("SESSION_DRIVER", SessionDriverMemory)),
		KeyPrefix: getEnv("SESSION_KEY_PREFIX", "ncl_"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Ledger configuration
	config.Ledger = LedgerConfig{
		Driver: strings.ToLower(getEnv("LEDGER_DRIVER", LedgerDriverMemory)),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ncl_timekeeping"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
	}

	// Timekeeping configuration
	clockInterval, err := time.ParseDuration(getEnv("CLOCK_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLOCK_INTERVAL: %w", err)
	}

	config.Timekeeping = TimekeepingConfig{
		ClockInterval: clockInterval,
		FixturesPath:  getEnv("FIXTURES_PATH", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET_KEY is required"))
	}
	if c.JWT.AccessExpiration <= 0 {
		errs = append(errs, fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive"))
	}
	if c.Timekeeping.ClockInterval <= 0 {
		errs = append(errs, fmt.Errorf("CLOCK_INTERVAL must be positive"))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err))
	}

	switch c.Session.Driver {
	case SessionDriverMemory:
	case SessionDriverRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("REDIS_ADDR is required when SESSION_DRIVER=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported SESSION_DRIVER %q", c.Session.Driver))
	}

	switch c.Ledger.Driver {
	case LedgerDriverMemory:
	case LedgerDriverPostgres:
		if c.Database.Password == "" {
			errs = append(errs, fmt.Errorf("DB_PASSWORD is required when LEDGER_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported LEDGER_DRIVER %q", c.Ledger.Driver))
	}

	return errors.Join(errs...)
}

// Location resolves App.Timezone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SlogLevel maps App.LogLevel onto slog levels, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
