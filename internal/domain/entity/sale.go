package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is an immutable record of a completed, paid transaction. The
// monetary figures are frozen at the moment the cashier confirmed
// payment and are never recomputed.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CashierID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	SubTotal      int64              `gorm:"not null" json:"-"` // Stored in cents
	Discount      int64              `gorm:"not null" json:"-"` // Stored in cents
	FinalTotal    int64              `gorm:"not null" json:"-"` // Stored in cents
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// MarshalJSON converts Sale to JSON with decimal money values
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal   float64 `json:"sub_total"`
		Discount   float64 `json:"discount"`
		FinalTotal float64 `json:"final_total"`
	}{
		Alias:      Alias(s),
		SubTotal:   float64(s.SubTotal) / 100,
		Discount:   float64(s.Discount) / 100,
		FinalTotal: float64(s.FinalTotal) / 100,
	})
}

// SaleItem is a committed line of a sale. Like the cart line it was made
// from, it is a snapshot copy, so deleting a product leaves sales history
// intact.
type SaleItem struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID            `gorm:"type:uuid;not null" json:"product_id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Category    enum.ProductCategory `gorm:"size:20;not null" json:"category"`
	PricePerKg  int64                `gorm:"not null" json:"-"` // Stored in cents
	WeightGrams int                  `gorm:"not null" json:"weight_grams"`
	Total       int64                `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt   time.Time            `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// MarshalJSON converts SaleItem to JSON with decimal money values
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		PricePerKg float64 `json:"price_per_kg"`
		Total      float64 `json:"total"`
	}{
		Alias:      Alias(si),
		PricePerKg: float64(si.PricePerKg) / 100,
		Total:      float64(si.Total) / 100,
	})
}
