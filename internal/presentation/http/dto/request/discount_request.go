package request

// DiscountTierRequest represents a single tier in a replace request
type DiscountTierRequest struct {
	Threshold  float64 `json:"threshold" binding:"required,gt=0"`
	Percentage float64 `json:"percentage" binding:"required,gt=0,lte=100"`
}

// ReplaceDiscountTiersRequest replaces the whole tier table. An empty
// list is valid and turns discounts off.
type ReplaceDiscountTiersRequest struct {
	Tiers []DiscountTierRequest `json:"tiers" binding:"required,dive"`
}
