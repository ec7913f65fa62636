package interfaces

import (
	"context"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	// CreateAndSettleInvoice inserts the payment and, when its status is
	// approved, flips the invoice to PAID — both in one transaction.
	CreateAndSettleInvoice(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
