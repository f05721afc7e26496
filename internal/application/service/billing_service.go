package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/pagination"
	"github.com/rgusain/tarazu-api/pkg/utils"
)

// BillingService turns the working cart into committed sales
type BillingService struct {
	saleRepo     repository.SaleRepository
	cartRepo     repository.CartRepository
	discountRepo repository.DiscountTierRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	saleRepo repository.SaleRepository,
	cartRepo repository.CartRepository,
	discountRepo repository.DiscountTierRepository,
) *BillingService {
	return &BillingService{
		saleRepo:     saleRepo,
		cartRepo:     cartRepo,
		discountRepo: discountRepo,
	}
}

// FinalizeSaleInput represents the finalize request
type FinalizeSaleInput struct {
	CashierID     uuid.UUID
	PaymentMethod enum.PaymentMethod
}

// FinalizeSale commits the current cart as an immutable sale. The
// subtotal, discount and final total are computed here, once, and the
// frozen figures go on the invoice; tier or price edits made after this
// moment cannot change them. The sale insert, stock decrement and cart
// clear happen in one transaction.
func (s *BillingService) FinalizeSale(ctx context.Context, input *FinalizeSaleInput) (*entity.Sale, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "Payment method must be Cash or Online"},
		})
	}

	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	tiers, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := ComputeCartTotals(items, tiers)

	sale := &entity.Sale{
		InvoiceNo:     utils.GenerateInvoiceNo(),
		CashierID:     input.CashierID,
		SubTotal:      ToCents(totals.SubTotal),
		Discount:      ToCents(totals.Discount),
		FinalTotal:    ToCents(totals.FinalTotal),
		PaymentMethod: input.PaymentMethod,
	}

	decrements := make(map[uuid.UUID]int, len(items))
	for i := range items {
		item := &items[i]
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Category:    item.Category,
			PricePerKg:  item.PricePerKg,
			WeightGrams: item.WeightGrams,
			Total:       ToCents(item.LineTotalDecimal()),
		})
		decrements[item.ProductID] += item.WeightGrams
	}

	if err := s.saleRepo.CreateWithStockAdjustment(ctx, sale, decrements); err != nil {
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *BillingService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales newest first
func (s *BillingService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ClearSales deletes the entire sales history
func (s *BillingService) ClearSales(ctx context.Context) error {
	return s.saleRepo.ClearAll(ctx)
}
