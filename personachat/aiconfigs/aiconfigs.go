package aiconfigs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrConfigNotFound = errors.New("ai config not found")

// creates a new persona repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanConfig(r pgx.Row) (*AIConfig, error) {
	var cfg AIConfig

	err := r.Scan(
		&cfg.ID,
		&cfg.OwnerID,
		&cfg.Name,
		&cfg.ModelType,
		&cfg.ModelName,
		&cfg.IsPublic,
		&cfg.IsTrialAllowed,
		&cfg.RequiresSubscription,
		&cfg.TrainingContent,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConfigNotFound
	}

	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// creates a new persona owned by the user
func (r *Repository) Create(ctx context.Context, ownerID string, req SaveConfigRequest) (*AIConfig, error) {
	return scanConfig(r.db.QueryRow(
		ctx,
		queryCreate,
		ownerID,
		req.Name,
		req.ModelType,
		req.ModelName,
		req.IsPublic,
		req.IsTrialAllowed,
		req.RequiresSubscription,
		req.TrainingContent,
	))
}

// finds a persona by its ID regardless of ownership
func (r *Repository) Get(ctx context.Context, configID string) (*AIConfig, error) {
	return scanConfig(r.db.QueryRow(ctx, queryGet, configID))
}

// lists visibility candidates for an authenticated user (public plus
// owned); callers run the result through Visible before returning it
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]AIConfig, error) {
	return r.list(ctx, queryListForUser, userID)
}

// lists visibility candidates for a guest
func (r *Repository) ListPublic(ctx context.Context) ([]AIConfig, error) {
	return r.list(ctx, queryListPublic)
}

// lists every persona (admin back-office view)
func (r *Repository) ListAll(ctx context.Context) ([]AIConfig, error) {
	return r.list(ctx, queryListAll)
}

// lists personas owned by the user (back-office view for holders of
// the ai permission)
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]AIConfig, error) {
	return r.list(ctx, queryListByOwner, ownerID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]AIConfig, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []AIConfig

	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// updates a persona the user owns
func (r *Repository) Update(ctx context.Context, configID, ownerID string, req SaveConfigRequest) (*AIConfig, error) {
	return scanConfig(r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Name,
		req.ModelType,
		req.ModelName,
		req.IsPublic,
		req.IsTrialAllowed,
		req.RequiresSubscription,
		req.TrainingContent,
		configID,
		ownerID,
	))
}

// removes a persona the user owns
func (r *Repository) Delete(ctx context.Context, configID, ownerID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, configID, ownerID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConfigNotFound
	}

	return nil
}
