// Package config loads service configuration from the environment (and an
// optional .env file loaded by the caller). All knobs have local-friendly
// defaults except the auth secrets, which must be set explicitly.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type ServerConfig struct {
	Port int
}

type AWSConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the DynamoDB endpoint for local development
	// (e.g. http://dynamodb:8000). Empty means the real AWS endpoint.
	Endpoint string
}

type TablesConfig struct {
	Estimates              string
	LineItems              string
	Clients                string
	Invoices               string
	Payments               string
	Settings               string
	Counters               string
	InvoiceByEstimateIndex string
	PaymentsByInvoiceIndex string
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string
	AdminName         string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
}

type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Auth     AuthConfig
	Payments PaymentsConfig
}

// Load reads configuration from the environment. It never reads files
// itself; godotenv/autoload has already populated the environment when a
// .env file is present.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)

	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK
	// requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("ESTIMATES_TABLE", "estimates")
	v.SetDefault("LINE_ITEMS_TABLE", "estimate_line_items")
	v.SetDefault("CLIENTS_TABLE", "clients")
	v.SetDefault("INVOICES_TABLE", "invoices")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("SETTINGS_TABLE", "settings")
	v.SetDefault("COUNTERS_TABLE", "counters")
	v.SetDefault("INVOICES_BY_ESTIMATE_INDEX", "estimate_id-index")
	v.SetDefault("PAYMENTS_BY_INVOICE_INDEX", "invoice_id-index")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_NAME", "Administrator")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)

	cfg := Config{
		Server: ServerConfig{
			Port: v.GetInt("PORT"),
		},
		AWS: AWSConfig{
			Region:    v.GetString("AWS_REGION"),
			AccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:  v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Estimates:              v.GetString("ESTIMATES_TABLE"),
			LineItems:              v.GetString("LINE_ITEMS_TABLE"),
			Clients:                v.GetString("CLIENTS_TABLE"),
			Invoices:               v.GetString("INVOICES_TABLE"),
			Payments:               v.GetString("PAYMENTS_TABLE"),
			Settings:               v.GetString("SETTINGS_TABLE"),
			Counters:               v.GetString("COUNTERS_TABLE"),
			InvoiceByEstimateIndex: v.GetString("INVOICES_BY_ESTIMATE_INDEX"),
			PaymentsByInvoiceIndex: v.GetString("PAYMENTS_BY_INVOICE_INDEX"),
		},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("JWT_SECRET"),
			TokenTTL:          time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
			AdminEmail:        v.GetString("ADMIN_EMAIL"),
			AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			AdminName:         v.GetString("ADMIN_NAME"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:               v.GetBool("PAYMENT_GATEWAY_MOCK"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}
