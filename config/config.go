package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DATABASE_URL wins when set; the discrete fields are the fallback.
	DatabaseURL string `env:"DATABASE_URL"`
	DB          DB     `envPrefix:"DB_"`

	JWTSecret      string `env:"JWT_SECRET"`
	AdminAPIKey    string `env:"ADMIN_API_KEY"`
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
}

type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"storefront"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}
