package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/pagination"
)

// In-memory repositories backing the service tests.

type memProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *memProductRepo) seed(p entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	stored := p
	r.products[stored.ID] = &stored
	return &stored
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *memProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.StockGrams <= p.StockAlertGrams {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memCartRepo struct {
	items []entity.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{}
}

func (r *memCartRepo) GetItems(ctx context.Context) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memCartRepo) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.CartItem, error) {
	for i := range r.items {
		if r.items[i].ProductID == productID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memCartRepo) Create(ctx context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *memCartRepo) Update(ctx context.Context, item *entity.CartItem) error {
	for i := range r.items {
		if r.items[i].ProductID == item.ProductID {
			r.items[i] = *item
			return nil
		}
	}
	return nil
}

func (r *memCartRepo) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memCartRepo) Clear(ctx context.Context) error {
	r.items = nil
	return nil
}

type memDiscountRepo struct {
	tiers []entity.DiscountTier
}

func newMemDiscountRepo(tiers ...entity.DiscountTier) *memDiscountRepo {
	return &memDiscountRepo{tiers: tiers}
}

func (r *memDiscountRepo) GetAll(ctx context.Context) ([]entity.DiscountTier, error) {
	out := make([]entity.DiscountTier, len(r.tiers))
	copy(out, r.tiers)
	return out, nil
}

func (r *memDiscountRepo) ReplaceAll(ctx context.Context, tiers []entity.DiscountTier) error {
	r.tiers = make([]entity.DiscountTier, len(tiers))
	copy(r.tiers, tiers)
	return nil
}

// memSaleRepo mirrors the transactional commit: sale insert, stock
// decrement and cart clear all happen in one call.
type memSaleRepo struct {
	sales    []entity.Sale
	products *memProductRepo
	cart     *memCartRepo
}

func newMemSaleRepo(products *memProductRepo, cart *memCartRepo) *memSaleRepo {
	return &memSaleRepo{products: products, cart: cart}
}

func (r *memSaleRepo) CreateWithStockAdjustment(ctx context.Context, sale *entity.Sale, decrements map[uuid.UUID]int) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for productID, grams := range decrements {
		if p, ok := r.products.products[productID]; ok {
			p.StockGrams -= grams
		}
	}
	r.sales = append([]entity.Sale{*sale}, r.sales...)
	r.cart.items = nil
	return nil
}

func (r *memSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			copied := r.sales[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, int64(len(out)), nil
}

func (r *memSaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *memSaleRepo) ClearAll(ctx context.Context) error {
	r.sales = nil
	return nil
}

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) seed(u entity.User) *entity.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stored := u
	r.users[stored.ID] = &stored
	return &stored
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memUserRepo) CountByRole(ctx context.Context, role enum.Role) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}
