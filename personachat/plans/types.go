package plans

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles pricing plan database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a catalog row. DurationDays is nil for perpetual plans;
// CoinCost of zero marks the free trial tier.
type Plan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayPrice string    `json:"display_price"`
	CoinCost     int64     `json:"coin_cost"`
	DurationDays *int      `json:"duration_days"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// contains data for creating or updating a plan
type SavePlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	DisplayPrice string   `json:"display_price"`
	CoinCost     int64    `json:"coin_cost"`
	DurationDays *int     `json:"duration_days"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
}
