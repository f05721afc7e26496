package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	SiteName  *string `json:"site_name" binding:"omitempty,min=1,max=255"`
	QRCodeURL *string `json:"qr_code_url"`
	Currency  *string `json:"currency" binding:"omitempty,max=10"`
	Language  *string `json:"language" binding:"omitempty,max=10"`
}
