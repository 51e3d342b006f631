package request

// LoginRequest opens an operator session with the terminal PIN.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
