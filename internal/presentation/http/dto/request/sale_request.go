package request

// FinalizeSaleRequest represents a request to commit the current cart
// as a paid sale
type FinalizeSaleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=Cash Online"`
}
