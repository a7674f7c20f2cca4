package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tradebook"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// Storage selects the durable store backend.
	Storage struct {
		Backend string `envconfig:"STORAGE_BACKEND" default:"file"` // file, redis, postgres, memory
		DataDir string `envconfig:"STORAGE_DATA_DIR" default:"./data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tradebook"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Payments struct {
		Latency     time.Duration `envconfig:"PAYMENT_LATENCY" default:"800ms"`
		DeclineRate float64       `envconfig:"PAYMENT_DECLINE_RATE" default:"0.1"`
	}

	Receipts struct {
		Endpoint string `envconfig:"RECEIPT_UPLOAD_ENDPOINT"`
		Token    string `envconfig:"RECEIPT_UPLOAD_TOKEN"`
	}

	Auth struct {
		// Secret signs the admin bearer tokens. Admin routes are
		// disabled when empty.
		Secret string `envconfig:"AUTH_JWT_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
