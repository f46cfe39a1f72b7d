package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sacvietnam/storefront/internal/format"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8080"`
	GinMode     string `envconfig:"GIN_MODE" default:"debug"`

	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"sac"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"sac_secret"`
	DBName      string `envconfig:"DB_NAME" default:"storefront"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`

	RedisURL        string        `envconfig:"REDIS_URL"`
	ProductCacheTTL time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"5m"`

	APIDevBaseURL  string        `envconfig:"API_DEV_BASE_URL" default:"http://localhost:3000/api"`
	APIProdBaseURL string        `envconfig:"API_PROD_BASE_URL" default:"https://smartairconclothing.com/api"`
	APITimeout     time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	DefaultLang string `envconfig:"DEFAULT_LANG" default:"vi"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Env normalises APP_ENV; anything but "production" runs as development.
func (c *Config) Env() Environment {
	if Environment(c.Environment) == Production {
		return Production
	}
	return Development
}

// APIBaseURL picks the product API endpoint for the running environment.
func (c *Config) APIBaseURL() string {
	if c.Env() == Production {
		return c.APIProdBaseURL
	}
	return c.APIDevBaseURL
}

func (c *Config) Lang() format.Lang {
	return format.ParseLang(c.DefaultLang, format.Vietnamese)
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
