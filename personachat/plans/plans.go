package plans

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPlanNotFound = errors.New("plan not found")

// creates a new plan repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// scans a full plan row in column order
func ScanPlan(r pgx.Row) (*Plan, error) {
	var plan Plan

	err := r.Scan(
		&plan.ID,
		&plan.Name,
		&plan.DisplayPrice,
		&plan.CoinCost,
		&plan.DurationDays,
		&plan.Features,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}

	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// creates a new catalog row
func (r *Repository) Create(ctx context.Context, req SavePlanRequest) (*Plan, error) {
	features := req.Features
	if features == nil {
		features = []string{}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return ScanPlan(r.db.QueryRow(
		ctx,
		queryCreate,
		req.Name,
		req.DisplayPrice,
		req.CoinCost,
		req.DurationDays,
		features,
		isActive,
	))
}

// finds a plan by its ID
func (r *Repository) Get(ctx context.Context, planID string) (*Plan, error) {
	return ScanPlan(r.db.QueryRow(ctx, queryGet, planID))
}

// lists the purchasable catalog, cheapest first
func (r *Repository) ListActive(ctx context.Context) ([]Plan, error) {
	return r.list(ctx, queryListActive)
}

// lists every catalog row including retired ones (back-office view)
func (r *Repository) ListAll(ctx context.Context) ([]Plan, error) {
	return r.list(ctx, queryListAll)
}

func (r *Repository) list(ctx context.Context, query string) ([]Plan, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Plan

	for rows.Next() {
		plan, err := ScanPlan(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// overwrites a catalog row; historical transactions keep referencing
// the id, the row itself is not versioned
func (r *Repository) Update(ctx context.Context, planID string, req SavePlanRequest) (*Plan, error) {
	features := req.Features
	if features == nil {
		features = []string{}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return ScanPlan(r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Name,
		req.DisplayPrice,
		req.CoinCost,
		req.DurationDays,
		features,
		isActive,
		planID,
	))
}

// removes a catalog row
func (r *Repository) Delete(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, planID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}
