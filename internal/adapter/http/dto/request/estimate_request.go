package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/usecase"
)

// LineItemRequest is one caller-supplied estimate row. Either an explicit
// amount or a quantity/unit-price pair may be given; when both quantity and
// unit price are positive the server derives the amount.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// EstimateRequest is the create/update payload. Updates carry the FULL line
// item list every time; the stored list is replaced wholesale.
type EstimateRequest struct {
	ClientID   string            `json:"client_id" binding:"required"`
	Date       *time.Time        `json:"date"`
	ExpiryDate *time.Time        `json:"expiry_date"`
	Notes      string            `json:"notes"`
	Terms      string            `json:"terms"`
	TaxRate    *decimal.Decimal  `json:"tax_rate"`
	IsDraft    *bool             `json:"is_draft"`
	LineItems  []LineItemRequest `json:"line_items"`
}

// ToInput converts the payload into the use case command. defaultDraft
// applies when the caller omitted is_draft (creates default to draft, updates
// to the caller's previous intent).
func (r EstimateRequest) ToInput(defaultDraft bool) usecase.EstimateInput {
	in := usecase.EstimateInput{
		ClientID:   r.ClientID,
		ExpiryDate: r.ExpiryDate,
		Notes:      r.Notes,
		Terms:      r.Terms,
		TaxRate:    r.TaxRate,
		IsDraft:    defaultDraft,
	}
	if r.Date != nil {
		in.Date = *r.Date
	}
	if r.IsDraft != nil {
		in.IsDraft = *r.IsDraft
	}
	in.LineItems = make([]usecase.LineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		in.LineItems = append(in.LineItems, usecase.LineItemInput{
			Description: li.Description,
			Category:    li.Category,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		})
	}
	return in
}

// EstimateStatusRequest is the PATCH /estimates/{id}/status payload.
type EstimateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
