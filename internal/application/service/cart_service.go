package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
)

// CartService owns the working cart for the terminal
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountTierRepository
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	discountRepo repository.DiscountTierRepository,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
	}
}

// CartView is the cart plus its display-time totals.
type CartView struct {
	Items  []entity.CartItem `json:"items"`
	Totals CartTotals        `json:"totals"`
}

// GetCart returns the cart lines with totals computed from the current
// discount tier table. These figures are for display; finalization
// freezes its own copy.
func (s *CartService) GetCart(ctx context.Context) (*CartView, error) {
	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	tiers, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Items:  items,
		Totals: ComputeCartTotals(items, tiers),
	}, nil
}

// AddToCart adds a weighed quantity of a product to the cart. Adding a
// product already in the cart merges into the existing line. The
// requested weight (including what is already in the line) is checked
// against the stock known right now; that is the only stock guard in
// the system.
func (s *CartService) AddToCart(ctx context.Context, productID uuid.UUID, weightGrams int) (*entity.CartItem, error) {
	if weightGrams <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "weight_grams", Message: "Weight must be greater than zero"},
		})
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	existing, err := s.cartRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	requested := weightGrams
	if existing != nil {
		requested += existing.WeightGrams
	}
	if requested > product.StockGrams {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "weight_grams", Message: "Requested weight exceeds available stock"},
		})
	}

	if existing != nil {
		existing.WeightGrams += weightGrams
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &entity.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		PricePerKg:  product.PricePerKg,
		WeightGrams: weightGrams,
		Image:       product.Image,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromCart removes a product's line; removing an absent line is a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, productID uuid.UUID) error {
	return s.cartRepo.DeleteByProductID(ctx, productID)
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}
