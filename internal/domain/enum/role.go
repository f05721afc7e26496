package enum

// Role determines what a user may do at the terminal
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCashier Role = "Cashier"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCashier
}
