package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	Category        string  `json:"category" binding:"required,oneof=Fruit Vegetable Other"`
	PricePerKg      float64 `json:"price_per_kg" binding:"required,gt=0"`
	StockGrams      int     `json:"stock_grams" binding:"min=0"`
	StockAlertGrams int     `json:"stock_alert_grams" binding:"min=0"`
	Image           *string `json:"image"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Category        *string  `json:"category" binding:"omitempty,oneof=Fruit Vegetable Other"`
	PricePerKg      *float64 `json:"price_per_kg" binding:"omitempty,gt=0"`
	StockGrams      *int     `json:"stock_grams" binding:"omitempty,min=0"`
	StockAlertGrams *int     `json:"stock_alert_grams" binding:"omitempty,min=0"`
	Image           *string  `json:"image"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category" binding:"omitempty,oneof=Fruit Vegetable Other"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
