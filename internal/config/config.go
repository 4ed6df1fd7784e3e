package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Salary   SalaryPolicy
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
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// AutoGenerateSlips enables the monthly job that runs bulk salary
	// generation for the previous period.
	AutoGenerateSlips bool
}

// SalaryPolicy holds the parameters of the attendance-based salary
// calculation. Overridable via env so the engine can run against
// alternate policies without a rebuild.
type SalaryPolicy struct {
	// StandardMonthlyHours divides the monthly base salary into an hourly
	// rate (8 hours/day x 22 working days by default).
	StandardMonthlyHours decimal.Decimal
	// StaticAllowance is added to every computed basic salary regardless
	// of hours worked.
	StaticAllowance decimal.Decimal
	// DeductionPercentage is applied to the gross salary.
	DeductionPercentage decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments.
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
		Name:     getEnv("DB_NAME", "talentindo-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:              appPort,
		Env:               getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AutoGenerateSlips: getEnv("SALARY_AUTOGEN_ENABLED", "false") == "true",
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	salary, err := loadSalaryPolicy()
	if err != nil {
		return nil, err
	}
	config.Salary = salary

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadSalaryPolicy() (SalaryPolicy, error) {
	hours, err := decimal.NewFromString(getEnv("SALARY_STANDARD_MONTHLY_HOURS", "176"))
	if err != nil {
		return SalaryPolicy{}, fmt.Errorf("invalid SALARY_STANDARD_MONTHLY_HOURS: %w", err)
	}
	allowance, err := decimal.NewFromString(getEnv("SALARY_STATIC_ALLOWANCE", "1000000"))
	if err != nil {
		return SalaryPolicy{}, fmt.Errorf("invalid SALARY_STATIC_ALLOWANCE: %w", err)
	}
	deduction, err := decimal.NewFromString(getEnv("SALARY_DEDUCTION_PERCENTAGE", "12"))
	if err != nil {
		return SalaryPolicy{}, fmt.Errorf("invalid SALARY_DEDUCTION_PERCENTAGE: %w", err)
	}

	policy := SalaryPolicy{
		StandardMonthlyHours: hours,
		StaticAllowance:      allowance,
		DeductionPercentage:  deduction,
	}
	if !policy.StandardMonthlyHours.IsPositive() {
		return SalaryPolicy{}, fmt.Errorf("SALARY_STANDARD_MONTHLY_HOURS must be positive")
	}
	if policy.StaticAllowance.IsNegative() {
		return SalaryPolicy{}, fmt.Errorf("SALARY_STATIC_ALLOWANCE must be non-negative")
	}
	if policy.DeductionPercentage.IsNegative() {
		return SalaryPolicy{}, fmt.Errorf("SALARY_DEDUCTION_PERCENTAGE must be non-negative")
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
