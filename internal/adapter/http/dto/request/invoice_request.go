package request

import (
	"encoding/json"
	"time"
)

// InvoiceFromEstimateRequest is the POST /estimates/{id}/invoice payload.
// DueDate is optional; the settings due-day window applies when omitted.
type InvoiceFromEstimateRequest struct {
	DueDate *time.Time `json:"due_date"`
}

// PaymentCreateRequest is the POST /invoices/{id}/payments payload.
//
// `payload` is forwarded to the payment provider as-is (raw JSON) to support
// varying provider schemas.
type PaymentCreateRequest struct {
	Payload json.RawMessage `json:"payload"`
}
