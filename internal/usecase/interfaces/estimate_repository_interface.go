package interfaces

import (
	"context"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Multi-item contracts (create, replace, delete) are atomic: the header and
// its line items are written in one transaction, so a failed call leaves the
// stored estimate exactly as it was. Reads return a zero-value Estimate when
// nothing matches; only infrastructure failures surface as errors.

type IEstimateRepository interface {
	// Create inserts the header and its line items transactionally.
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)

	// GetByID returns the estimate with line items attached.
	GetByID(ctx context.Context, id string) (entities.Estimate, error)

	// List returns estimate headers, optionally filtered by status and client.
	List(ctx context.Context, status entities.EstimateStatus, clientID string) ([]entities.Estimate, error)

	// ReplaceLineItemsAndUpdate deletes every stored line item, inserts the
	// ones on e and rewrites the header in one transaction. The write is
	// conditioned on the stored version matching expectedVersion; on mismatch
	// it returns ErrVersionConflict and nothing changes.
	ReplaceLineItemsAndUpdate(ctx context.Context, e entities.Estimate, expectedVersion int64) (entities.Estimate, error)

	// UpdateStatusAndDraftFlag persists both fields as a single update; no
	// reader can observe the status changed with a stale draft flag.
	UpdateStatusAndDraftFlag(ctx context.Context, id string, status entities.EstimateStatus, isDraft bool) (entities.Estimate, error)

	// Delete removes the header and all owned line items transactionally.
	// Returns false when no such estimate exists.
	Delete(ctx context.Context, id string) (bool, error)

	// NextSequence atomically increments and returns the display-code counter.
	NextSequence(ctx context.Context) (int64, error)
}
