package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscountTier maps a minimum subtotal threshold to a percentage discount.
// The table is stored sorted ascending by threshold; tier selection walks
// it from the highest qualifying threshold down.
type DiscountTier struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Threshold  int64     `gorm:"not null" json:"-"` // Stored in cents
	Percentage float64   `gorm:"not null" json:"percentage"`
	Position   int       `gorm:"not null;default:0" json:"-"` // canonical ascending order
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new discount tier
func (t *DiscountTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiscountTier model
func (DiscountTier) TableName() string {
	return "discount_tiers"
}

// ThresholdDecimal returns the qualifying subtotal in currency units
func (t *DiscountTier) ThresholdDecimal() float64 {
	return float64(t.Threshold) / 100
}

// MarshalJSON converts DiscountTier to JSON with a decimal threshold
func (t DiscountTier) MarshalJSON() ([]byte, error) {
	type Alias DiscountTier
	return json.Marshal(&struct {
		Alias
		Threshold float64 `json:"threshold"`
	}{
		Alias:     Alias(t),
		Threshold: t.ThresholdDecimal(),
	})
}
