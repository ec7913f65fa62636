package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:         "e-1",
		EstimateID: "#42-20260829-2",
		ClientID:   "c-1",
		Status:     entities.EstimateStatusApproved,
		IsDraft:    false,
		Date:       now,
		TaxRate:    decimal.NewFromInt(25),
		Subtotal:   decimal.NewFromInt(1000),
		Tax:        decimal.NewFromInt(250),
		Amount:     decimal.NewFromInt(1250),
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "demo", Amount: decimal.NewFromInt(500)},
			{ID: "li-2", Description: "materials", Amount: decimal.NewFromInt(500)},
		},
		Client:    &entities.Client{ID: "c-1", Name: "Acme"},
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "e-1" || res.EstimateID != "#42-20260829-2" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "APPROVED" || res.IsDraft {
		t.Fatalf("unexpected workflow fields: %+v", res)
	}
	if !res.Subtotal.Equal(decimal.NewFromInt(1000)) || !res.Amount.Equal(decimal.NewFromInt(1250)) {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.LineItems) != 2 || res.LineItems[0].ID != "li-1" {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.Client == nil || res.Client.Name != "Acme" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
}

func TestFromEstimate_NoClient(t *testing.T) {
	res := FromEstimate(entities.Estimate{ID: "e-1"})
	if res.Client != nil {
		t.Fatalf("expected nil client, got %+v", res.Client)
	}
	if res.LineItems == nil {
		t.Fatalf("expected empty (non-nil) line item slice")
	}
}
