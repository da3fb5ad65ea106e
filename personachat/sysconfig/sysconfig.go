package sysconfig

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryGet = `
		SELECT provider_keys, guest_message_limit, updated_at
		FROM system_config
		WHERE id = 1
	`

	querySetProviderKey = `
		UPDATE system_config
		SET provider_keys = jsonb_set(provider_keys, ARRAY[$1], to_jsonb($2::text)), updated_at = NOW()
		WHERE id = 1
	`

	querySetGuestLimit = `
		UPDATE system_config
		SET guest_message_limit = $1, updated_at = NOW()
		WHERE id = 1
	`

	querySeedProviderKey = `
		UPDATE system_config
		SET provider_keys = jsonb_set(provider_keys, ARRAY[$1], to_jsonb($2::text)), updated_at = NOW()
		WHERE id = 1 AND NOT provider_keys ? $1
	`
)

// creates a new system config repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// reads the system configuration row
func (r *Repository) Get(ctx context.Context) (*SystemConfig, error) {
	var cfg SystemConfig

	err := r.db.QueryRow(ctx, queryGet).Scan(
		&cfg.ProviderKeys,
		&cfg.GuestMessageLimit,
		&cfg.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// stores a system-wide provider API key
func (r *Repository) SetProviderKey(ctx context.Context, provider, key string) error {
	_, err := r.db.Exec(ctx, querySetProviderKey, provider, key)
	return err
}

// updates the guest message budget
func (r *Repository) SetGuestMessageLimit(ctx context.Context, limit int) error {
	_, err := r.db.Exec(ctx, querySetGuestLimit, limit)
	return err
}

// writes a provider key only when none is configured yet; used for the
// GROK_API_KEY environment fallback at startup
func (r *Repository) SeedProviderKey(ctx context.Context, provider, key string) error {
	if key == "" {
		return nil
	}

	_, err := r.db.Exec(ctx, querySeedProviderKey, provider, key)
	return err
}
