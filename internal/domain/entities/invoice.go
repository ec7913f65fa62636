package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// Invoice is created from an approved estimate and carries a frozen snapshot
// of its line items and totals. Later edits to the estimate never touch an
// already issued invoice.
//
// Storage model (DynamoDB):
//   - invoices table, PK: id
//   - GSI estimate_id-index (PK: estimate_id)

type Invoice struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"invoice_id"`
	EstimateID string          `json:"estimate_id"`
	ClientID   string          `json:"client_id"`
	Status     InvoiceStatus   `json:"status"`
	Date       time.Time       `json:"date"`
	DueDate    time.Time       `json:"due_date"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Amount     decimal.Decimal `json:"amount"`
	LineItems  []LineItem      `json:"line_items"`
	Client     *Client         `json:"client,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
