package repository

import (
	"context"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
	domainRepo "github.com/rgusain/tarazu-api/internal/domain/repository"
	"gorm.io/gorm"
)

type discountTierRepository struct {
	db *gorm.DB
}

// NewDiscountTierRepository creates a new discount tier repository
func NewDiscountTierRepository(db *gorm.DB) domainRepo.DiscountTierRepository {
	return &discountTierRepository{db: db}
}

// GetAll returns the tier table in its canonical ascending-threshold order.
func (r *discountTierRepository) GetAll(ctx context.Context) ([]entity.DiscountTier, error) {
	var tiers []entity.DiscountTier
	err := r.db.WithContext(ctx).Order("position ASC").Find(&tiers).Error
	return tiers, err
}

// ReplaceAll swaps the whole tier table in one transaction.
func (r *discountTierRepository) ReplaceAll(ctx context.Context, tiers []entity.DiscountTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.DiscountTier{}).Error; err != nil {
			return err
		}
		if len(tiers) == 0 {
			return nil
		}
		return tx.Create(&tiers).Error
	})
}
