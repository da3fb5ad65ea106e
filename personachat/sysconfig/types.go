package sysconfig

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles the single system_config row. System provider keys live
// here rather than in environment variables so admins can rotate them
// at runtime; GROK_API_KEY is honored once as a seed-time fallback.
type Repository struct {
	db *pgxpool.Pool
}

// is the shared system configuration row
type SystemConfig struct {
	ProviderKeys      map[string]string `json:"-"`
	GuestMessageLimit int               `json:"guest_message_limit"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
