package request

// AddToCartRequest represents a request to add a weighed amount of a
// product to the cart
type AddToCartRequest struct {
	ProductID   string `json:"product_id" binding:"required,uuid"`
	WeightGrams int    `json:"weight_grams" binding:"required,gt=0"`
}
