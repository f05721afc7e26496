package request

// LoginRequest represents a login request. Cashiers pick their account
// and sign in without a password; admins must supply one.
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Password string `json:"password"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
