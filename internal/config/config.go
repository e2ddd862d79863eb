package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment, with an optional .env file on top.
type Config struct {
	HTTPPort           string        `envconfig:"HTTP_PORT" default:"8080"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`

	CatalogDSN      string `envconfig:"CATALOG_DSN" default:":memory:"`
	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY" default:"AED"`

	// Payment intents settle in a single fixed currency regardless of the
	// cart currency.
	SettlementCurrency string        `envconfig:"SETTLEMENT_CURRENCY" default:"aed"`
	StripeSecretKey    string        `envconfig:"STRIPE_SECRET_KEY"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`

	// PaymentStrict makes a missing Stripe key a fatal startup condition.
	// Permissive deployments fall back to the dummy test key and surface
	// provider failures at request time instead.
	PaymentStrict bool `envconfig:"PAYMENT_STRICT" default:"false"`
}

func Load() (*Config, error) {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.StripeSecretKey == "" {
		if cfg.PaymentStrict {
			return nil, errors.New("STRIPE_SECRET_KEY is required when PAYMENT_STRICT is set")
		}
		cfg.StripeSecretKey = "sk_test_dummy"
	}

	return cfg, nil
}
