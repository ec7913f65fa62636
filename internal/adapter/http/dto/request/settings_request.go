package request

import (
	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/usecase"
)

type SettingsRequest struct {
	BusinessName       string          `json:"business_name" binding:"required"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Address            string          `json:"address"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	EstimateExpiryDays int             `json:"estimate_expiry_days"`
	InvoiceDueDays     int             `json:"invoice_due_days"`
}

func (r SettingsRequest) ToInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		BusinessName:       r.BusinessName,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		DefaultTaxRate:     r.DefaultTaxRate,
		EstimateExpiryDays: r.EstimateExpiryDays,
		InvoiceDueDays:     r.InvoiceDueDays,
	}
}
