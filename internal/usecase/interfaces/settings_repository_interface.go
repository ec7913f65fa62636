package interfaces

import (
	"context"

	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
)

// ISettingsRepository abstracts DynamoDB persistence for the Settings
// singleton.

type ISettingsRepository interface {
	// Get returns found=false when the business never saved settings.
	Get(ctx context.Context) (s entities.Settings, found bool, err error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
