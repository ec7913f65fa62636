package interfaces

import (
	"context"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices snapshot their line items into the invoice item itself, so a
// single conditional put is already atomic.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error)
	// NextSequence atomically increments and returns the display-code counter.
	NextSequence(ctx context.Context) (int64, error)
}
