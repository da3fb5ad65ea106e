package auth

import "codeberg.org/personachat/server/personachat/users"

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse returns the sanitized user plus a bearer token
type SessionResponse struct {
	Token              string      `json:"token"`
	User               *users.User `json:"user"`
	SubscriptionStatus string      `json:"subscription_status"`
}
