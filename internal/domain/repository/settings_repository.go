package repository

import (
	"context"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the store settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
