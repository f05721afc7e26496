package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	svc      *BillingService
	cartSvc  *CartService
	products *memProductRepo
	cart     *memCartRepo
	sales    *memSaleRepo
}

func newBillingFixture(tiers ...entity.DiscountTier) *billingFixture {
	products := newMemProductRepo()
	cart := newMemCartRepo()
	discounts := newMemDiscountRepo(tiers...)
	sales := newMemSaleRepo(products, cart)
	return &billingFixture{
		svc:      NewBillingService(sales, cart, discounts),
		cartSvc:  NewCartService(cart, products, discounts),
		products: products,
		cart:     cart,
		sales:    sales,
	}
}

func TestFinalizeSale_RejectsEmptyCart(t *testing.T) {
	f := newBillingFixture()

	_, err := f.svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Empty(t, f.sales.sales)
}

func TestFinalizeSale_RejectsUnknownPaymentMethod(t *testing.T) {
	f := newBillingFixture()

	_, err := f.svc.FinalizeSale(context.Background(), &FinalizeSaleInput{
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentMethod("Card"),
	})
	assert.Error(t, err)
}

func TestFinalizeSale_CommitsCartAtomically(t *testing.T) {
	f := newBillingFixture(tier(200, 5), tier(400, 10))
	ctx := context.Background()

	banana := f.products.seed(entity.Product{
		Name:       "Banana",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(100),
		StockGrams: 10000,
	})
	carrot := f.products.seed(entity.Product{
		Name:       "Carrot",
		Category:   enum.CategoryVegetable,
		PricePerKg: ToCents(75),
		StockGrams: 6000,
	})

	_, err := f.cartSvc.AddToCart(ctx, banana.ID, 2000) // 200.00
	require.NoError(t, err)
	_, err = f.cartSvc.AddToCart(ctx, carrot.ID, 2000) // 150.00
	require.NoError(t, err)

	cashierID := uuid.New()
	sale, err := f.svc.FinalizeSale(ctx, &FinalizeSaleInput{
		CashierID:     cashierID,
		PaymentMethod: enum.PaymentOnline,
	})
	require.NoError(t, err)

	// Frozen figures: subtotal 350, 5% tier, final 332.50
	assert.Equal(t, int64(35000), sale.SubTotal)
	assert.Equal(t, int64(1750), sale.Discount)
	assert.Equal(t, int64(33250), sale.FinalTotal)
	assert.Equal(t, cashierID, sale.CashierID)
	assert.Equal(t, enum.PaymentOnline, sale.PaymentMethod)
	assert.True(t, strings.HasPrefix(sale.InvoiceNo, "INV-"))
	require.Len(t, sale.Items, 2)

	// Stock reduced by exactly the sold weights
	updatedBanana, _ := f.products.GetByID(ctx, banana.ID)
	updatedCarrot, _ := f.products.GetByID(ctx, carrot.ID)
	assert.Equal(t, 8000, updatedBanana.StockGrams)
	assert.Equal(t, 4000, updatedCarrot.StockGrams)

	// Cart emptied, exactly one sale recorded
	assert.Empty(t, f.cart.items)
	assert.Len(t, f.sales.sales, 1)
}

func TestFinalizeSale_LineTotalsFrozen(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()

	pear := f.products.seed(entity.Product{
		Name:       "Pear",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(90),
		StockGrams: 5000,
	})

	_, err := f.cartSvc.AddToCart(ctx, pear.ID, 1500) // 135.00
	require.NoError(t, err)

	sale, err := f.svc.FinalizeSale(ctx, &FinalizeSaleInput{
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	require.NoError(t, err)

	require.Len(t, sale.Items, 1)
	item := sale.Items[0]
	assert.Equal(t, "Pear", item.Name)
	assert.Equal(t, 1500, item.WeightGrams)
	assert.Equal(t, ToCents(90), item.PricePerKg)
	assert.Equal(t, int64(13500), item.Total)
}

func TestFinalizeSale_StaleCartLineCanDriveStockNegative(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()

	okra := f.products.seed(entity.Product{
		Name:       "Okra",
		Category:   enum.CategoryVegetable,
		PricePerKg: ToCents(60),
		StockGrams: 1000,
	})

	_, err := f.cartSvc.AddToCart(ctx, okra.ID, 800)
	require.NoError(t, err)

	// Stock shrinks after the line was added; finalization does not
	// re-check, it decrements unconditionally
	f.products.products[okra.ID].StockGrams = 500

	_, err = f.svc.FinalizeSale(ctx, &FinalizeSaleInput{
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	require.NoError(t, err)

	updated, _ := f.products.GetByID(ctx, okra.ID)
	assert.Equal(t, -300, updated.StockGrams)
}

func TestFinalizeSale_NewestFirstInHistory(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()

	lime := f.products.seed(entity.Product{
		Name:       "Lime",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(150),
		StockGrams: 5000,
	})

	_, err := f.cartSvc.AddToCart(ctx, lime.ID, 200)
	require.NoError(t, err)
	first, err := f.svc.FinalizeSale(ctx, &FinalizeSaleInput{CashierID: uuid.New(), PaymentMethod: enum.PaymentCash})
	require.NoError(t, err)

	_, err = f.cartSvc.AddToCart(ctx, lime.ID, 300)
	require.NoError(t, err)
	second, err := f.svc.FinalizeSale(ctx, &FinalizeSaleInput{CashierID: uuid.New(), PaymentMethod: enum.PaymentCash})
	require.NoError(t, err)

	result, err := f.svc.ListSales(ctx, pagination.DefaultPagination())
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, second.ID, result.Items[0].ID)
	assert.Equal(t, first.ID, result.Items[1].ID)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
