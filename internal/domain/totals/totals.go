// Package totals is the single authoritative place where estimate and invoice
// money math happens. Handlers and use cases must never reimplement this
// arithmetic inline.
package totals

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

var (
	ErrNegativeAmount = errors.New("line item amount must not be negative")
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived monetary fields of an estimate or invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Amount   decimal.Decimal
}

// Compute derives subtotal, tax and grand total from the given line items and
// tax rate (a percentage in [0,100]).
//
//	subtotal = sum of item amounts (empty list -> 0)
//	tax      = round2(subtotal * taxRate / 100), half-up
//	amount   = subtotal + tax
//
// Pure and deterministic: identical input always yields identical output.
func Compute(items []entities.LineItem, taxRate decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return Totals{}, ErrInvalidTaxRate
	}

	subtotal := decimal.Zero
	for _, it := range items {
		if it.Amount.IsNegative() {
			return Totals{}, ErrNegativeAmount
		}
		subtotal = subtotal.Add(it.Amount)
	}

	tax := subtotal.Mul(taxRate).Div(hundred).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Amount:   subtotal.Add(tax),
	}, nil
}

// Round2 applies the service-wide currency rounding (two decimals, half-up).
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
