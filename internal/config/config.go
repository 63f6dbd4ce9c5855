package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// MockWebhookSecret is fixed: the mock gateway is a development-only path
// and skips signature verification anyway.
const MockWebhookSecret = "mock_webhook_secret"

type Config struct {
	Addr    string
	Gateway string

	// Base URL the proxy adapters use to reach the payment endpoints.
	PaymentAPIBase string

	// Shared webhook secret per gateway name.
	WebhookSecrets map[string]string

	// Gateways whose webhook secret fell back to the insecure development
	// default because the environment variable was unset.
	DefaultedSecrets []string
}

func Load() *Config {
	cfg := &Config{
		Addr:           getenv("SERVER_ADDR", ":8080"),
		Gateway:        getenv("PAYMENT_GATEWAY", "mock"),
		PaymentAPIBase: getenv("PAYMENT_API_URL", "http://localhost:8080"),
		WebhookSecrets: map[string]string{
			"mock": MockWebhookSecret,
		},
	}

	cfg.WebhookSecrets["paymentcloud"] = cfg.secret("paymentcloud", "PAYMENTCLOUD_WEBHOOK_SECRET", "pc_webhook_secret_dev")
	cfg.WebhookSecrets["easypay"] = cfg.secret("easypay", "EASYPAY_WEBHOOK_SECRET", "ep_webhook_secret_dev")

	return cfg
}

func (c *Config) secret(gateway, key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	c.DefaultedSecrets = append(c.DefaultedSecrets, gateway)
	return fallback
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
