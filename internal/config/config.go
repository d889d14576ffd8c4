package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PolicyConfig holds the payroll calculation policy. These are regulated
// numbers; they live in configuration so the policy can be corrected
// without a code change.
type PolicyConfig struct {
	RoundingGridMinutes     int // clock punches snap to this grid
	MinOvertimeMinutes      int // overtime below this floor is paid as regular
	DriverDailyRegularHours int // daily regular ceiling for transport-exempt employees
	StatWindowDays          int // trailing window for stat holiday eligibility
	StatMinEligibleDays     int // minimum eligible days within the window
	EntitlementRoundMinutes int // entitlement average rounds up to this grid
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pacificpay"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPolicy() (PolicyConfig, error) {
	policy := PolicyConfig{}

	fields := []struct {
		dst      *int
		env      string
		fallback string
	}{
		{&policy.RoundingGridMinutes, "ROUNDING_GRID_MINUTES", "15"},
		{&policy.MinOvertimeMinutes, "MIN_OVERTIME_MINUTES", "30"},
		{&policy.DriverDailyRegularHours, "DRIVER_DAILY_REGULAR_HOURS", "10"},
		{&policy.StatWindowDays, "STAT_WINDOW_DAYS", "30"},
		{&policy.StatMinEligibleDays, "STAT_MIN_ELIGIBLE_DAYS", "15"},
		{&policy.EntitlementRoundMinutes, "ENTITLEMENT_ROUND_MINUTES", "15"},
	}

	for _, f := range fields {
		v, err := strconv.Atoi(getEnv(f.env, f.fallback))
		if err != nil {
			return PolicyConfig{}, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = v
	}

	return policy, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Policy.RoundingGridMinutes <= 0 || 60%c.Policy.RoundingGridMinutes != 0 {
		return fmt.Errorf("ROUNDING_GRID_MINUTES must divide an hour evenly")
	}
	if c.Policy.EntitlementRoundMinutes <= 0 || 60%c.Policy.EntitlementRoundMinutes != 0 {
		return fmt.Errorf("ENTITLEMENT_ROUND_MINUTES must divide an hour evenly")
	}
	if c.Policy.StatMinEligibleDays > c.Policy.StatWindowDays {
		return fmt.Errorf("STAT_MIN_ELIGIBLE_DAYS cannot exceed STAT_WINDOW_DAYS")
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
