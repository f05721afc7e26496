package service

import (
	"math"

	"github.com/rgusain/tarazu-api/internal/domain/entity"
)

// Pricing is pure: it turns a cart snapshot and the discount tier table
// into the figures shown to the customer. Math runs in currency units
// (float64) and is rounded to cents only when a sale is frozen, so
// intermediate sums do not accumulate rounding error.

// CartTotals holds the display-time figures for a cart.
type CartTotals struct {
	SubTotal           float64 `json:"sub_total"`
	Discount           float64 `json:"discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	FinalTotal         float64 `json:"final_total"`
}

// ComputeSubtotal sums cart lines with the linear price-per-gram model:
// (pricePerKg / 1000) * weightInGrams.
func ComputeSubtotal(items []entity.CartItem) float64 {
	var subtotal float64
	for i := range items {
		subtotal += items[i].LineTotalDecimal()
	}
	return subtotal
}

// SelectDiscountTier picks, among tiers whose threshold the subtotal
// meets, the one with the highest threshold. Tiers sharing a threshold
// resolve to the higher percentage. Returns nil when no tier qualifies.
func SelectDiscountTier(subtotal float64, tiers []entity.DiscountTier) *entity.DiscountTier {
	var best *entity.DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if tier.ThresholdDecimal() > subtotal {
			continue
		}
		if best == nil ||
			tier.Threshold > best.Threshold ||
			(tier.Threshold == best.Threshold && tier.Percentage > best.Percentage) {
			best = tier
		}
	}
	return best
}

// ComputeDiscount applies the tier percentage to the subtotal, capped at
// the subtotal itself so the final total can never go negative.
func ComputeDiscount(subtotal float64, tier *entity.DiscountTier) float64 {
	if tier == nil {
		return 0
	}
	discount := subtotal * tier.Percentage / 100
	if discount > subtotal {
		return subtotal
	}
	return discount
}

// ComputeFinalTotal returns the amount due, floored at zero.
func ComputeFinalTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}

// ComputeCartTotals runs the full calculation for a cart snapshot.
func ComputeCartTotals(items []entity.CartItem, tiers []entity.DiscountTier) CartTotals {
	subtotal := ComputeSubtotal(items)
	tier := SelectDiscountTier(subtotal, tiers)
	discount := ComputeDiscount(subtotal, tier)

	totals := CartTotals{
		SubTotal:   subtotal,
		Discount:   discount,
		FinalTotal: ComputeFinalTotal(subtotal, discount),
	}
	if tier != nil {
		totals.DiscountPercentage = tier.Percentage
	}
	return totals
}

// ToCents converts a currency-unit amount to cents for storage.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
