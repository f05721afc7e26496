package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CartItem is one working line of the current, uncommitted sale. It carries
// a full snapshot of the product at the time it was weighed, so later
// catalog edits do not change what the customer was quoted.
type CartItem struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Category    enum.ProductCategory `gorm:"size:20;not null" json:"category"`
	PricePerKg  int64                `gorm:"not null" json:"-"` // Stored in cents
	WeightGrams int                  `gorm:"not null" json:"weight_grams"`
	Image       *string              `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new cart item
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotalDecimal returns the line total in currency units using the
// linear price-per-gram model.
func (ci *CartItem) LineTotalDecimal() float64 {
	return float64(ci.PricePerKg) / 100 / 1000 * float64(ci.WeightGrams)
}

// MarshalJSON converts CartItem to JSON with decimal money values
func (ci CartItem) MarshalJSON() ([]byte, error) {
	type Alias CartItem
	return json.Marshal(&struct {
		Alias
		PricePerKg float64 `json:"price_per_kg"`
		LineTotal  float64 `json:"line_total"`
	}{
		Alias:      Alias(ci),
		PricePerKg: float64(ci.PricePerKg) / 100,
		LineTotal:  ci.LineTotalDecimal(),
	})
}
