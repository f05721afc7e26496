package enum

// PaymentMethod is how a sale was paid
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentOnline PaymentMethod = "Online"
)

// IsValid reports whether the payment method is one of the known values
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentOnline
}
