package interfaces

import (
	"context"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	// Delete returns false when no such client exists.
	Delete(ctx context.Context, id string) (bool, error)
}
