package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	domainRepo "github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/pagination"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateWithStockAdjustment commits the sale, decrements stock for every
// purchased line and clears the cart in a single transaction. Stock is
// decremented without a floor: if the cart was built from stale catalog
// data the stored quantity can go negative, which inventory reports
// surface rather than hide.
func (r *saleRepository) CreateWithStockAdjustment(ctx context.Context, sale *entity.Sale, decrements map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for productID, grams := range decrements {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", productID).
				Update("stock_grams", gorm.Expr("stock_grams - ?", grams)).Error; err != nil {
				return err
			}
		}

		return tx.Where("1 = 1").Delete(&entity.CartItem{}).Error
	})
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

// List returns sales newest first.
func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&entity.Sale{}).Error
	})
}
