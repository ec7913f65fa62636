package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

type SettingsResponse struct {
	BusinessName       string          `json:"business_name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	EstimateExpiryDays int             `json:"estimate_expiry_days"`
	InvoiceDueDays     int             `json:"invoice_due_days"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		BusinessName:       s.BusinessName,
		Email:              s.Email,
		Phone:              s.Phone,
		Address:            s.Address,
		DefaultTaxRate:     s.DefaultTaxRate,
		EstimateExpiryDays: s.EstimateExpiryDays,
		InvoiceDueDays:     s.InvoiceDueDays,
		UpdatedAt:          s.UpdatedAt,
	}
}
