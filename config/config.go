package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config is the process configuration, parsed from environment variables.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser string `env:"DB_USER" envDefault:"root"`
	DBPass string `env:"DB_PASS"`
	DBHost string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort string `env:"DB_PORT" envDefault:"3306"`
	DBName string `env:"DB_NAME" envDefault:"rental_db"`

	// full DSN override; takes precedence over the DB_* fields
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	SeedOnStart bool `env:"SEED_DB" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN builds the MySQL DSN.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}
