package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
)

// CartRepository defines the interface for the working cart. The cart is
// a single shared collection (one terminal, one customer at a time).
type CartRepository interface {
	GetItems(ctx context.Context) ([]entity.CartItem, error)
	GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error
	Clear(ctx context.Context) error
}
