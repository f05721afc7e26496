package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a loose-weight item in the catalog. Price is per
// kilogram and stored in cents; stock is tracked in grams.
type Product struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name            string               `gorm:"size:255;not null" json:"name"`
	Category        enum.ProductCategory `gorm:"size:20;not null;index" json:"category"`
	PricePerKg      int64                `gorm:"not null;default:0" json:"-"` // Stored in cents
	StockGrams      int                  `gorm:"not null;default:0" json:"stock_grams"`
	StockAlertGrams int                  `gorm:"not null;default:0" json:"stock_alert_grams"`
	Image           *string              `gorm:"type:text" json:"image,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// PricePerKgDecimal returns the per-kilogram price in currency units
func (p *Product) PricePerKgDecimal() float64 {
	return float64(p.PricePerKg) / 100
}

// MarshalJSON converts Product to JSON with a decimal price
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		PricePerKg float64 `json:"price_per_kg"`
	}{
		Alias:      Alias(p),
		PricePerKg: p.PricePerKgDecimal(),
	})
}
