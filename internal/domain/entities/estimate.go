package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the decision lifecycle of an estimate.
//
// Domain notes:
//   - Estimates start pending; approving or declining is terminal.
//   - There is no re-open transition; a new estimate is created instead.

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "PENDING"
	EstimateStatusApproved EstimateStatus = "APPROVED"
	EstimateStatusDeclined EstimateStatus = "DECLINED"
)

// ParseEstimateStatus validates a caller-supplied status value.
func ParseEstimateStatus(s string) (EstimateStatus, bool) {
	switch EstimateStatus(s) {
	case EstimateStatusPending, EstimateStatusApproved, EstimateStatusDeclined:
		return EstimateStatus(s), true
	}
	return "", false
}

// LineItem is one priced row owned by an estimate (or snapshotted into an
// invoice). Line items are replaced wholesale whenever their parent changes;
// they are never patched individually.
//
// Invariant: when Quantity and UnitPrice are both positive,
// Amount == round2(Quantity * UnitPrice).

type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Estimate is the central aggregate: an ordered list of line items plus the
// totals derived from them.
//
// Storage model (DynamoDB):
//   - estimates table, PK: id
//   - line items live in their own table (PK: estimate_id, SK: id) and are
//     written together with the header in one TransactWriteItems call
//
// Version increments on every write and guards replace-and-recompute updates
// against concurrent modification.

type Estimate struct {
	ID         string          `json:"id"`
	EstimateID string          `json:"estimate_id"`
	ClientID   string          `json:"client_id"`
	Status     EstimateStatus  `json:"status"`
	IsDraft    bool            `json:"is_draft"`
	Date       time.Time       `json:"date"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Terms      string          `json:"terms,omitempty"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Amount     decimal.Decimal `json:"amount"`
	LineItems  []LineItem      `json:"line_items"`
	Client     *Client         `json:"client,omitempty"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
