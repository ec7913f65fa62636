package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

type InvoiceResponse struct {
	ID         string             `json:"id"`
	InvoiceID  string             `json:"invoice_id"`
	EstimateID string             `json:"estimate_id"`
	ClientID   string             `json:"client_id"`
	Status     string             `json:"status"`
	Date       time.Time          `json:"date"`
	DueDate    time.Time          `json:"due_date"`
	TaxRate    decimal.Decimal    `json:"tax_rate"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Amount     decimal.Decimal    `json:"amount"`
	LineItems  []LineItemResponse `json:"line_items"`
	Client     *ClientResponse    `json:"client,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:         inv.ID,
		InvoiceID:  inv.InvoiceID,
		EstimateID: inv.EstimateID,
		ClientID:   inv.ClientID,
		Status:     string(inv.Status),
		Date:       inv.Date,
		DueDate:    inv.DueDate,
		TaxRate:    inv.TaxRate,
		Subtotal:   inv.Subtotal,
		Tax:        inv.Tax,
		Amount:     inv.Amount,
		LineItems:  fromLineItems(inv.LineItems),
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
	if inv.Client != nil {
		c := FromClient(*inv.Client)
		res.Client = &c
	}
	return res
}

func FromInvoices(in []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(in))
	for _, inv := range in {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(in []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPayment(p))
	}
	return out
}
