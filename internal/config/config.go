// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DefaultTimezone is where budget days start and end.
	DefaultTimezone = "Asia/Ho_Chi_Minh"

	devJWTSecret = "dev-secret-change-me"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Environment     string        `mapstructure:"ENVIRONMENT"`
	Port            string        `mapstructure:"PORT"`
	DBPath          string        `mapstructure:"DB_PATH"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	LedgerTimezone string `mapstructure:"LEDGER_TIMEZONE"`

	// AMQP publishing is off when AMQPURL is empty.
	AMQPURL      string `mapstructure:"AMQP_URL"`
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`
	AMQPQueue    string `mapstructure:"AMQP_QUEUE"`

	// Sheet imports are off when neither is set.
	GoogleServiceAccountJSON string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
}

var defaults = map[string]any{
	"ENVIRONMENT":                 EnvDevelopment,
	"PORT":                        "8080",
	"DB_PATH":                     "./data/prosperpath.db",
	"LOG_LEVEL":                   "info",
	"SHUTDOWN_TIMEOUT":            "10s",
	"JWT_SECRET":                  "",
	"JWT_TTL":                     "24h",
	"LEDGER_TIMEZONE":             DefaultTimezone,
	"AMQP_URL":                    "",
	"AMQP_EXCHANGE":               "prosperpath",
	"AMQP_QUEUE":                  "budget_exceeded",
	"GOOGLE_SERVICE_ACCOUNT_JSON": "",
	"GOOGLE_SERVICE_ACCOUNT_FILE": "",
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		slog.Warn("JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// SheetsEnabled reports whether Google service account credentials are set.
func (c *Config) SheetsEnabled() bool {
	return c.GoogleServiceAccountJSON != "" || c.GoogleServiceAccountFile != ""
}

// Location returns the ledger timezone. When the zone database does not know
// the name it falls back to a fixed UTC+7 zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.LedgerTimezone)
	if err != nil {
		slog.Warn("Unknown ledger timezone, falling back to UTC+7", "timezone", c.LedgerTimezone, "error", err)
		return time.FixedZone("UTC+7", 7*60*60)
	}
	return loc
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		problems = append(problems, fmt.Sprintf("invalid environment '%s': must be %s or %s", c.Environment, EnvDevelopment, EnvProduction))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required outside development")
	} else if c.Environment == EnvProduction && c.JWTSecret == devJWTSecret {
		problems = append(problems, "JWT_SECRET must not be the development secret in production")
	}

	if c.JWTTTL <= 0 {
		problems = append(problems, "JWT_TTL must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQPExchange == "" || c.AMQPQueue == "" {
			problems = append(problems, "AMQP exchange and queue cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
