package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

func TestDecimalStringRoundTrip(t *testing.T) {
	// 33.33 is not representable in binary floating point; the string
	// encoding must preserve it exactly.
	d := decimal.RequireFromString("33.33")
	if got := decFromString(decToString(d)); !got.Equal(d) {
		t.Fatalf("round trip changed value: %s -> %s", d, got)
	}

	if !decFromString("not-a-number").IsZero() {
		t.Fatal("invalid decimal string should map to zero")
	}
}

func TestEstimateItemMapping(t *testing.T) {
	expiry := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:         "est-1",
		EstimateID: "#1-20250310-2",
		ClientID:   "client-1",
		Status:     entities.EstimateStatusApproved,
		IsDraft:    false,
		Date:       time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		ExpiryDate: &expiry,
		TaxRate:    decimal.RequireFromString("25"),
		Subtotal:   decimal.RequireFromString("1000"),
		Tax:        decimal.RequireFromString("250"),
		Amount:     decimal.RequireFromString("1250"),
		Version:    3,
		CreatedAt:  time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
	}

	got := fromEstimateItem(toEstimateItem(e))

	if got.ID != e.ID || got.Status != e.Status || got.Version != e.Version {
		t.Fatalf("header fields changed in mapping: %+v", got)
	}
	if !got.Amount.Equal(e.Amount) || !got.TaxRate.Equal(e.TaxRate) {
		t.Fatalf("money fields changed in mapping: %+v", got)
	}
	if got.ExpiryDate == nil || !got.ExpiryDate.Equal(expiry) {
		t.Fatalf("expiry date changed in mapping: %v", got.ExpiryDate)
	}
	if !got.Date.Equal(e.Date) {
		t.Fatalf("date changed in mapping: %v", got.Date)
	}
}

func TestEstimateItemMapping_NoExpiry(t *testing.T) {
	e := entities.Estimate{ID: "est-1", Date: time.Now().UTC()}
	got := fromEstimateItem(toEstimateItem(e))
	if got.ExpiryDate != nil {
		t.Fatalf("expected nil expiry, got %v", got.ExpiryDate)
	}
}

func TestLineItemOrderRestored(t *testing.T) {
	// The sort key is the item uuid, so a Query hands rows back in uuid
	// order. Simulate that by storing three positioned items and reading
	// them in a scrambled order.
	lineItems := []entities.LineItem{
		{ID: "z-uuid", Description: "demolition", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), Amount: decimal.NewFromInt(100)},
		{ID: "a-uuid", Description: "framing", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), Amount: decimal.NewFromInt(100)},
		{ID: "m-uuid", Description: "cleanup", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20), Amount: decimal.NewFromInt(20)},
	}

	var stored []lineItemItem
	for i, li := range lineItems {
		stored = append(stored, toLineItemItem("est-1", i, li))
	}
	scrambled := []lineItemItem{stored[1], stored[2], stored[0]}

	got := lineItemsInOrder(scrambled)
	if len(got) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(got))
	}
	for i, want := range []string{"demolition", "framing", "cleanup"} {
		if got[i].Description != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].Description)
		}
	}
}

func TestTransactConditionFailed(t *testing.T) {
	code := "ConditionalCheckFailed"
	tce := &types.TransactionCanceledException{
		Message: aws.String("Transaction cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: &code},
			{Code: aws.String("None")},
		},
	}
	if !transactConditionFailed(tce) {
		t.Fatal("expected condition failure to be detected")
	}

	if transactConditionFailed(errors.New("network error")) {
		t.Fatal("plain errors are not condition failures")
	}

	throttled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
	}
	if transactConditionFailed(throttled) {
		t.Fatal("non-condition cancellations are not condition failures")
	}
}
