package ledger

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/personachat/server/personachat/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// a finite balance cannot cover the requested debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// the balance is exactly zero, so a one-coin deduction was skipped
	ErrNoCoins = errors.New("no coins left")
)

// creates a new coin ledger
func New(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db}
}

// applies a signed delta to the user's balance and appends the matching
// ledger row, both inside one database transaction. Unlimited (nil)
// balances are never made finite: the call is a no-op for them and no
// ledger row is written. A delta that would push a finite balance below
// zero fails with ErrInsufficientFunds and rolls back.
func (l *Ledger) AddCoins(ctx context.Context, userID string, delta int64, adminID *string, txType Type) (*users.User, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	user, err := applyDelta(ctx, tx, userID, delta, adminID, txType)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// AddCoinsTx is AddCoins running inside a caller-owned transaction,
// used by the subscription purchase flow
func AddCoinsTx(ctx context.Context, tx pgx.Tx, userID string, delta int64, adminID *string, txType Type) (*users.User, error) {
	return applyDelta(ctx, tx, userID, delta, adminID, txType)
}

func applyDelta(ctx context.Context, tx pgx.Tx, userID string, delta int64, adminID *string, txType Type) (*users.User, error) {
	user, err := users.ScanUser(tx.QueryRow(ctx, queryApplyDelta, userID, delta))

	if errors.Is(err, users.ErrUserNotFound) {
		// the guarded UPDATE matched nothing: missing user, unlimited
		// balance, or underflow - distinguish with a balance read
		var coins *int64
		if scanErr := tx.QueryRow(ctx, queryGetBalance, userID).Scan(&coins); scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return nil, users.ErrUserNotFound
			}

			return nil, scanErr
		}

		if coins == nil {
			// unlimited stays unlimited under grants and debits alike
			return users.ScanUser(tx.QueryRow(ctx, queryFindByID, userID))
		}

		return nil, ErrInsufficientFunds
	}

	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, queryInsertTransaction, userID, adminID, delta, txType); err != nil {
		return nil, fmt.Errorf("failed to append ledger row: %w", err)
	}

	return user, nil
}

// removes exactly one coin for a metered AI turn. Unlimited balances
// pass through untouched with no ledger row; a zero balance returns
// ErrNoCoins so the caller can treat the turn as unpaid.
func (l *Ledger) DeductOne(ctx context.Context, userID string) (*users.User, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	user, err := users.ScanUser(tx.QueryRow(ctx, queryDeductOne, userID))

	if errors.Is(err, users.ErrUserNotFound) {
		var coins *int64
		if scanErr := tx.QueryRow(ctx, queryGetBalance, userID).Scan(&coins); scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return nil, users.ErrUserNotFound
			}

			return nil, scanErr
		}

		if coins == nil {
			user, err = users.ScanUser(tx.QueryRow(ctx, queryFindByID, userID))
			if err != nil {
				return nil, err
			}

			if commitErr := tx.Commit(ctx); commitErr != nil {
				return nil, fmt.Errorf("failed to commit transaction: %w", commitErr)
			}

			return user, nil
		}

		return nil, ErrNoCoins
	}

	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, queryInsertTransaction, userID, nil, int64(-1), TypePayment); err != nil {
		return nil, fmt.Errorf("failed to append ledger row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// lists a user's ledger rows, newest first
func (l *Ledger) ListForUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := l.db.Query(ctx, queryListForUser, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Transaction

	for rows.Next() {
		var t Transaction
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.AdminID,
			&t.Coins,
			&t.Type,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
