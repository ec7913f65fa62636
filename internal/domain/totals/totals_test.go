package totals

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

func items(amounts ...string) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, entities.LineItem{Amount: decimal.RequireFromString(a)})
	}
	return out
}

func TestCompute_EmptyList(t *testing.T) {
	for _, rate := range []string{"0", "10", "100"} {
		got, err := Compute(nil, decimal.RequireFromString(rate))
		if err != nil {
			t.Fatalf("rate %s: unexpected error: %v", rate, err)
		}
		if !got.Subtotal.IsZero() || !got.Tax.IsZero() || !got.Amount.IsZero() {
			t.Fatalf("rate %s: expected all zero, got %+v", rate, got)
		}
	}
}

func TestCompute_SpecScenarios(t *testing.T) {
	got, err := Compute(items("500", "500"), decimal.NewFromInt(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Subtotal.Equal(decimal.NewFromInt(1000)) || !got.Tax.Equal(decimal.NewFromInt(250)) || !got.Amount.Equal(decimal.NewFromInt(1250)) {
		t.Fatalf("unexpected totals: %+v", got)
	}

	got, err = Compute(items("200"), decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Subtotal.Equal(decimal.NewFromInt(200)) || !got.Tax.Equal(decimal.NewFromInt(20)) || !got.Amount.Equal(decimal.NewFromInt(220)) {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestCompute_AmountIsSubtotalPlusTax(t *testing.T) {
	cases := []struct {
		amounts []string
		rate    string
	}{
		{[]string{"0.01", "0.02", "99.97"}, "7.25"},
		{[]string{"1234.56"}, "0"},
		{[]string{"10", "20", "30"}, "100"},
		{[]string{"0.10"}, "5"},
	}
	for _, tc := range cases {
		got, err := Compute(items(tc.amounts...), decimal.RequireFromString(tc.rate))
		if err != nil {
			t.Fatalf("rate %s: unexpected error: %v", tc.rate, err)
		}
		if !got.Amount.Equal(got.Subtotal.Add(got.Tax)) {
			t.Fatalf("rate %s: amount %s != subtotal %s + tax %s", tc.rate, got.Amount, got.Subtotal, got.Tax)
		}
	}
}

func TestCompute_HalfUpRounding(t *testing.T) {
	// 0.10 * 5% = 0.005, which rounds up to 0.01.
	got, err := Compute(items("0.10"), decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Tax.Equal(decimal.RequireFromString("0.01")) {
		t.Fatalf("expected tax 0.01, got %s", got.Tax)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := items("19.99", "5.01", "0.33")
	rate := decimal.RequireFromString("8.875")

	first, err := Compute(in, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(in, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Subtotal.String() != second.Subtotal.String() ||
		first.Tax.String() != second.Tax.String() ||
		first.Amount.String() != second.Amount.String() {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestCompute_Validation(t *testing.T) {
	if _, err := Compute(items("-1"), decimal.NewFromInt(10)); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := Compute(items("10"), decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidTaxRate) {
		t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
	}
	if _, err := Compute(items("10"), decimal.RequireFromString("100.01")); !errors.Is(err, ErrInvalidTaxRate) {
		t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
	}
}
