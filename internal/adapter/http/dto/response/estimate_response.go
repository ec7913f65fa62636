package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type EstimateResponse struct {
	ID         string             `json:"id"`
	EstimateID string             `json:"estimate_id"`
	ClientID   string             `json:"client_id"`
	Status     string             `json:"status"`
	IsDraft    bool               `json:"is_draft"`
	Date       time.Time          `json:"date"`
	ExpiryDate *time.Time         `json:"expiry_date,omitempty"`
	Notes      string             `json:"notes,omitempty"`
	Terms      string             `json:"terms,omitempty"`
	TaxRate    decimal.Decimal    `json:"tax_rate"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Amount     decimal.Decimal    `json:"amount"`
	LineItems  []LineItemResponse `json:"line_items"`
	Client     *ClientResponse    `json:"client,omitempty"`
	Version    int64              `json:"version"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	res := EstimateResponse{
		ID:         e.ID,
		EstimateID: e.EstimateID,
		ClientID:   e.ClientID,
		Status:     string(e.Status),
		IsDraft:    e.IsDraft,
		Date:       e.Date,
		ExpiryDate: e.ExpiryDate,
		Notes:      e.Notes,
		Terms:      e.Terms,
		TaxRate:    e.TaxRate,
		Subtotal:   e.Subtotal,
		Tax:        e.Tax,
		Amount:     e.Amount,
		LineItems:  fromLineItems(e.LineItems),
		Version:    e.Version,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.Client != nil {
		c := FromClient(*e.Client)
		res.Client = &c
	}
	return res
}

func FromEstimates(in []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(in))
	for _, e := range in {
		out = append(out, FromEstimate(e))
	}
	return out
}

func fromLineItems(in []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(in))
	for _, li := range in {
		out = append(out, LineItemResponse{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		})
	}
	return out
}
