package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/personachat/server/internal/logger"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/plans"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// creates a new subscription manager
func New(db *pgxpool.Pool) *Manager {
	return &Manager{db: db}
}

// buys or renews a plan for the user. Debit, ledger row, and the new
// entitlement fields are written atomically; the user row is locked
// for the duration so concurrent purchases cannot lose updates.
func (m *Manager) Purchase(ctx context.Context, userID, planID string) (*users.User, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	plan, err := plans.ScanPlan(tx.QueryRow(ctx, queryGetPlan, planID))
	if errors.Is(err, plans.ErrPlanNotFound) {
		return nil, ErrPlanNotFound
	}

	if err != nil {
		return nil, err
	}

	user, err := users.ScanUser(tx.QueryRow(ctx, queryLockUser, userID))
	if err != nil {
		return nil, err
	}

	// explicit pre-check so callers get ErrInsufficientFunds, not the
	// ledger's generic underflow failure
	if user.Coins != nil && *user.Coins < plan.CoinCost {
		return nil, ErrInsufficientFunds
	}

	// unlimited balances skip both the debit and the ledger row
	if user.Coins != nil && plan.CoinCost > 0 {
		if _, err := ledger.AddCoinsTx(ctx, tx, userID, -plan.CoinCost, nil, ledger.TypeSubscription); err != nil {
			return nil, err
		}
	}

	newExpiry := ComputeExpiry(user.SubscriptionExpiresAt, plan.DurationDays, time.Now())

	user, err = users.ScanUser(tx.QueryRow(ctx, querySetSubscription, planID, newExpiry, userID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// lazily expires a stale subscription. There is no background sweep:
// this runs at every login and at the start of every chat turn. A
// failed clear falls back to the pre-expiry user so login is never
// blocked by the cleanup write.
func (m *Manager) CheckStatus(ctx context.Context, userID string) (*users.User, error) {
	user, err := users.ScanUser(m.db.QueryRow(ctx, queryFindByID, userID))
	if err != nil {
		return nil, err
	}

	if StatusOf(user, time.Now()) != StatusExpired {
		return user, nil
	}

	cleared, err := users.ScanUser(m.db.QueryRow(ctx, queryClearExpired, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, users.ErrUserNotFound) {
			// another request already cleared it
			return users.ScanUser(m.db.QueryRow(ctx, queryFindByID, userID))
		}

		logger.ErrorErr(err, "failed to clear expired subscription, returning stale state",
			"user_id", userID,
		)
		return user, nil
	}

	return cleared, nil
}
