package request

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("25")
	draft := false

	r := EstimateRequest{
		ClientID: "c-1",
		Date:     &date,
		Notes:    "note",
		TaxRate:  &rate,
		IsDraft:  &draft,
		LineItems: []LineItemRequest{
			{Description: "labor", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
		},
	}

	in := r.ToInput(true)
	if in.ClientID != "c-1" || !in.Date.Equal(date) || in.Notes != "note" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.IsDraft {
		t.Fatalf("explicit is_draft=false must win over the default")
	}
	if in.TaxRate == nil || !in.TaxRate.Equal(rate) {
		t.Fatalf("unexpected tax rate: %v", in.TaxRate)
	}
	if len(in.LineItems) != 1 || in.LineItems[0].Description != "labor" {
		t.Fatalf("unexpected line items: %+v", in.LineItems)
	}
}

func TestEstimateRequest_ToInputDefaults(t *testing.T) {
	r := EstimateRequest{ClientID: "c-1"}

	in := r.ToInput(true)
	if !in.IsDraft {
		t.Fatalf("expected default draft flag")
	}
	if !in.Date.IsZero() {
		t.Fatalf("expected zero date when omitted")
	}
	if in.TaxRate != nil {
		t.Fatalf("expected nil tax rate when omitted")
	}
	if len(in.LineItems) != 0 {
		t.Fatalf("expected empty line items")
	}
}
