package repository

import (
	"context"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
)

// DiscountTierRepository defines the interface for the discount tier table.
// The table is small and always replaced wholesale from the admin screen.
type DiscountTierRepository interface {
	GetAll(ctx context.Context) ([]entity.DiscountTier, error)
	ReplaceAll(ctx context.Context, tiers []entity.DiscountTier) error
}
