package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Storage  StorageConfig
	Sweep    SweepConfig
	Defaults settings.Defaults
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
	Location       *time.Location
}

type StorageConfig struct {
	Driver         string
	MigrateOnStart bool
}

// SweepConfig controls the periodic recalculation job.
type SweepConfig struct {
	Interval     time.Duration
	LookbackDays int
}

func Load() (*Config, error) {
	// .env is optional; a deployment may inject everything through the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worktime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	migrateOnStart, err := strconv.ParseBool(getEnv("MIGRATE_ON_START", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATE_ON_START: %w", err)
	}
	config.Storage = StorageConfig{
		Driver:         strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		MigrateOnStart: migrateOnStart,
	}

	// Sweep configuration
	interval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}
	lookback, err := strconv.Atoi(getEnv("SWEEP_LOOKBACK_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_LOOKBACK_DAYS: %w", err)
	}
	config.Sweep = SweepConfig{Interval: interval, LookbackDays: lookback}

	config.Defaults, err = loadDefaults()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadDefaults() (settings.Defaults, error) {
	d := settings.StandardDefaults()

	expected, err := strconv.Atoi(getEnv("DEFAULT_EXPECTED_MINUTES", strconv.Itoa(settings.DefaultExpectedMinutes)))
	if err != nil {
		return d, fmt.Errorf("invalid DEFAULT_EXPECTED_MINUTES: %w", err)
	}
	d.ExpectedMinutes = expected

	if raw := getEnvSlice("DEFAULT_WORK_DAYS"); len(raw) > 0 {
		days := make([]int, 0, len(raw))
		for _, s := range raw {
			day, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || day < 1 || day > 7 {
				return d, fmt.Errorf("invalid DEFAULT_WORK_DAYS entry %q", s)
			}
			days = append(days, day)
		}
		d.WorkDays = days
	}

	decimals := []struct {
		key      string
		fallback string
		target   *decimal.Decimal
	}{
		{"DEFAULT_OVERTIME_MULTIPLIER", settings.DefaultOvertimeMultiplier, &d.OvertimeMultiplier},
		{"DEFAULT_WEEKEND_MULTIPLIER", settings.DefaultWeekendMultiplier, &d.WeekendMultiplier},
		{"DEFAULT_HOLIDAY_MULTIPLIER", settings.DefaultHolidayMultiplier, &d.HolidayMultiplier},
		{"DEFAULT_BOSS_CALL_MULTIPLIER", settings.DefaultBossCallMultiplier, &d.BossCallMultiplier},
		{"DEFAULT_MONTHLY_WORK_DAYS", settings.DefaultMonthlyWorkDays, &d.MonthlyWorkDays},
	}
	for _, item := range decimals {
		v, err := decimal.NewFromString(getEnv(item.key, item.fallback))
		if err != nil {
			return d, fmt.Errorf("invalid %s: %w", item.key, err)
		}
		*item.target = v
	}
	return d, nil
}

// Validate validates the configuration and resolves the application timezone.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q", StorageDriverPostgres, StorageDriverMemory)
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	c.App.Location = loc

	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.Sweep.LookbackDays < 0 {
		return fmt.Errorf("SWEEP_LOOKBACK_DAYS must not be negative")
	}
	if c.Defaults.ExpectedMinutes <= 0 {
		return fmt.Errorf("DEFAULT_EXPECTED_MINUTES must be positive")
	}
	if c.Defaults.MonthlyWorkDays.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("DEFAULT_MONTHLY_WORK_DAYS must be positive")
	}
	return nil
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
