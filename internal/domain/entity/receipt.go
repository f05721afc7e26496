package entity

// Receipt is the printable view of a sale. It carries decimal money
// values ready for rendering, not the stored cent amounts.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	InvoiceNo string        `json:"invoice_no"`
	Date      string        `json:"date"`
	Cashier   string        `json:"cashier,omitempty"`
	Payment   string        `json:"payment,omitempty"`
	Items     []ReceiptItem `json:"items"`
	SubTotal  float64       `json:"sub_total"`
	Discount  float64       `json:"discount"`
	Total     float64       `json:"total"`
	QRCodeURL string        `json:"qr_code_url,omitempty"`
	Footer    string        `json:"footer,omitempty"`
}

// ReceiptHeader contains the store information printed at the top
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem is a single printed line item
type ReceiptItem struct {
	Name        string  `json:"name"`
	WeightGrams int     `json:"weight_grams"`
	PricePerKg  float64 `json:"price_per_kg"`
	Total       float64 `json:"total"`
}
