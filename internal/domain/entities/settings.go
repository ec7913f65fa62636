package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-business configuration singleton. DefaultTaxRate seeds
// new estimates; the expiry/due windows derive default dates.

type Settings struct {
	BusinessName       string          `json:"business_name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	EstimateExpiryDays int             `json:"estimate_expiry_days"`
	InvoiceDueDays     int             `json:"invoice_due_days"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// DefaultSettings is returned until the business saves its own settings.
func DefaultSettings() Settings {
	return Settings{
		BusinessName:       "My Business",
		DefaultTaxRate:     decimal.Zero,
		EstimateExpiryDays: 30,
		InvoiceDueDays:     30,
	}
}
