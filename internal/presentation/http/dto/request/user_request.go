package request

// CreateUserRequest represents a staff account creation request
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Role     string `json:"role" binding:"required,oneof=Admin Cashier"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a staff account update request
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=Admin Cashier"`
	Password *string `json:"password"`
}
