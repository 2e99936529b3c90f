package auth

import userapp "github.com/shelterhq/pawhaven/internal/application/user"

// LoginRequest represents a credential check
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a self-service account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	RealName string `json:"realName" binding:"required,min=1,max=100"`
}

// LoginResponse carries the issued token and the public account projection
type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	User        *userapp.UserResponse `json:"user"`
}
