package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/pkg/pagination"
)

// SaleRepository defines the interface for committed sales.
type SaleRepository interface {
	// CreateWithStockAdjustment commits a finalized sale in one transaction:
	// the sale and its items are inserted, each purchased product's stock is
	// decremented by its line weight, and the cart is cleared. Either all of
	// it becomes visible or none of it does.
	CreateWithStockAdjustment(ctx context.Context, sale *entity.Sale, decrements map[uuid.UUID]int) error

	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	ListAll(ctx context.Context) ([]entity.Sale, error)
	ClearAll(ctx context.Context) error
}
