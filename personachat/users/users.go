package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// scans a full user row in column order; shared with packages that
// mutate users inside their own transactions
func ScanUser(r pgx.Row) (*User, error) {
	var user User

	err := r.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.IsAdmin,
		&user.IsActive,
		&user.Coins,
		&user.SubscriptionPlanID,
		&user.SubscriptionExpiresAt,
		&user.APIKeys,
		&user.Permissions,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// creates a new account
func (r *Repository) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	return ScanUser(r.db.QueryRow(
		ctx,
		queryCreate,
		req.Email,
		req.PasswordHash,
		req.Name,
		req.IsAdmin,
		req.Coins,
	))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return ScanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// finds a user by email, case-insensitively
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return ScanUser(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// lists all users, newest first
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []User

	for rows.Next() {
		user, err := ScanUser(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// soft-enables or soft-disables an account; disabled accounts keep
// their data but cannot log in
func (r *Repository) SetActive(ctx context.Context, userID string, active bool) (*User, error) {
	return ScanUser(r.db.QueryRow(ctx, querySetActive, active, userID))
}

// replaces the user's permission tag set
func (r *Repository) SetPermissions(ctx context.Context, userID string, permissions []string) (*User, error) {
	if permissions == nil {
		permissions = []string{}
	}

	return ScanUser(r.db.QueryRow(ctx, querySetPermissions, permissions, userID))
}

// stores a personal provider API key for the user
func (r *Repository) SetAPIKey(ctx context.Context, userID, provider, key string) (*User, error) {
	return ScanUser(r.db.QueryRow(ctx, querySetAPIKey, provider, key, userID))
}

// removes a personal provider API key
func (r *Repository) DeleteAPIKey(ctx context.Context, userID, provider string) (*User, error) {
	return ScanUser(r.db.QueryRow(ctx, queryDeleteAPIKey, provider, userID))
}
