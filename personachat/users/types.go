package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an account in the system. Coins is nil for unlimited
// balances (typically admins) - that is a distinct state, not zero.
type User struct {
	ID                    string            `json:"id"`
	Email                 string            `json:"email"`
	PasswordHash          string            `json:"-"`
	Name                  string            `json:"name"`
	IsAdmin               bool              `json:"is_admin"`
	IsActive              bool              `json:"is_active"`
	Coins                 *int64            `json:"coins"`
	SubscriptionPlanID    *string           `json:"subscription_plan_id"`
	SubscriptionExpiresAt *time.Time        `json:"subscription_expires_at"`
	APIKeys               map[string]string `json:"-"`
	Permissions           []string          `json:"permissions"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// contains data for creating an account
type CreateUserRequest struct {
	Email        string
	PasswordHash string
	Name         string
	IsAdmin      bool
	Coins        *int64
}
