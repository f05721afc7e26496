package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*CartService, *memProductRepo, *memCartRepo) {
	products := newMemProductRepo()
	cart := newMemCartRepo()
	discounts := newMemDiscountRepo()
	return NewCartService(cart, products, discounts), products, cart
}

func TestAddToCart_CreatesSnapshotLine(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()

	tomato := products.seed(entity.Product{
		Name:       "Tomato",
		Category:   enum.CategoryVegetable,
		PricePerKg: ToCents(50),
		StockGrams: 5000,
	})

	item, err := svc.AddToCart(ctx, tomato.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", item.Name)
	assert.Equal(t, ToCents(50), item.PricePerKg)
	assert.Equal(t, 500, item.WeightGrams)
}

func TestAddToCart_MergesIntoExistingLine(t *testing.T) {
	svc, products, cart := newCartFixture()
	ctx := context.Background()

	apple := products.seed(entity.Product{
		Name:       "Apple",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(120),
		StockGrams: 10000,
	})

	_, err := svc.AddToCart(ctx, apple.ID, 300)
	require.NoError(t, err)
	item, err := svc.AddToCart(ctx, apple.ID, 450)
	require.NoError(t, err)

	assert.Equal(t, 750, item.WeightGrams)
	assert.Len(t, cart.items, 1)
}

func TestAddToCart_RejectsNonPositiveWeight(t *testing.T) {
	svc, products, cart := newCartFixture()
	ctx := context.Background()

	onion := products.seed(entity.Product{
		Name:       "Onion",
		Category:   enum.CategoryVegetable,
		PricePerKg: ToCents(30),
		StockGrams: 2000,
	})

	_, err := svc.AddToCart(ctx, onion.ID, 0)
	assert.Error(t, err)
	_, err = svc.AddToCart(ctx, onion.ID, -5)
	assert.Error(t, err)
	assert.Empty(t, cart.items)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.AddToCart(context.Background(), uuid.New(), 100)
	assert.Error(t, err)
}

func TestAddToCart_StockCheckCoversWholeLine(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()

	grape := products.seed(entity.Product{
		Name:       "Grape",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(200),
		StockGrams: 1000,
	})

	_, err := svc.AddToCart(ctx, grape.ID, 800)
	require.NoError(t, err)

	// 800 already in the line, another 300 would exceed the 1000 in stock
	_, err = svc.AddToCart(ctx, grape.ID, 300)
	assert.Error(t, err)

	// Topping up to exactly the stock is fine
	item, err := svc.AddToCart(ctx, grape.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, 1000, item.WeightGrams)
}

func TestRemoveFromCart_AbsentLineIsNoOp(t *testing.T) {
	svc, _, _ := newCartFixture()

	err := svc.RemoveFromCart(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestGetCart_ComputesDisplayTotals(t *testing.T) {
	products := newMemProductRepo()
	cart := newMemCartRepo()
	discounts := newMemDiscountRepo(tier(200, 5), tier(400, 10))
	svc := NewCartService(cart, products, discounts)
	ctx := context.Background()

	mango := products.seed(entity.Product{
		Name:       "Mango",
		Category:   enum.CategoryFruit,
		PricePerKg: ToCents(100),
		StockGrams: 10000,
	})

	_, err := svc.AddToCart(ctx, mango.ID, 3500) // 350.00
	require.NoError(t, err)

	view, err := svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.InDelta(t, 350.0, view.Totals.SubTotal, 1e-9)
	assert.InDelta(t, 17.5, view.Totals.Discount, 1e-9)
	assert.InDelta(t, 332.5, view.Totals.FinalTotal, 1e-9)
}

func TestClearCart(t *testing.T) {
	svc, products, cart := newCartFixture()
	ctx := context.Background()

	spinach := products.seed(entity.Product{
		Name:       "Spinach",
		Category:   enum.CategoryVegetable,
		PricePerKg: ToCents(40),
		StockGrams: 3000,
	})

	_, err := svc.AddToCart(ctx, spinach.ID, 250)
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx))
	assert.Empty(t, cart.items)
}
