package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
)

// DiscountService manages the discount tier table
type DiscountService struct {
	discountRepo repository.DiscountTierRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountTierRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// DiscountTierInput represents a single tier in a replace request
type DiscountTierInput struct {
	Threshold  float64
	Percentage float64
}

// ListTiers returns the tiers in canonical ascending threshold order
func (s *DiscountService) ListTiers(ctx context.Context) ([]entity.DiscountTier, error) {
	return s.discountRepo.GetAll(ctx)
}

// ReplaceTiers replaces the whole tier table. The incoming tiers may
// arrive in any order; they are stored sorted ascending by threshold so
// readers always see the canonical order. An empty list is valid and
// disables discounts entirely.
func (s *DiscountService) ReplaceTiers(ctx context.Context, inputs []DiscountTierInput) ([]entity.DiscountTier, error) {
	var fieldErrors []apperror.FieldError
	for i, in := range inputs {
		if in.Threshold <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("tiers[%d].threshold", i),
				Message: "Threshold must be greater than zero",
			})
		}
		if in.Percentage <= 0 || in.Percentage > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("tiers[%d].percentage", i),
				Message: "Percentage must be between 0 and 100",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	tiers := make([]entity.DiscountTier, 0, len(inputs))
	for _, in := range inputs {
		tiers = append(tiers, entity.DiscountTier{
			Threshold:  ToCents(in.Threshold),
			Percentage: in.Percentage,
		})
	}

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Threshold < tiers[j].Threshold
	})
	for i := range tiers {
		tiers[i].Position = i
	}

	if err := s.discountRepo.ReplaceAll(ctx, tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}
