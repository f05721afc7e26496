package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings is the single configuration row for the shop: the name
// shown on invoices, the payment QR image for online payments, and the
// display locale/currency.
type StoreSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SiteName  string    `gorm:"size:255;not null" json:"site_name"`
	QRCodeURL *string   `gorm:"type:text" json:"qr_code_url,omitempty"`
	Currency  string    `gorm:"size:10;default:'INR'" json:"currency"`
	Language  string    `gorm:"size:10;default:'en'" json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
