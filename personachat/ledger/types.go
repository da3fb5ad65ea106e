package ledger

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// mutates coin balances and appends the matching ledger rows in one
// database transaction
type Ledger struct {
	db *pgxpool.Pool
}

// classifies why a balance changed
type Type string

const (
	TypeManual       Type = "manual"       // admin grant or correction
	TypePayment      Type = "payment"      // metered AI usage
	TypeDaily        Type = "daily"        // daily bonus grant
	TypeSubscription Type = "subscription" // plan purchase debit
	TypeCrypto       Type = "crypto"       // crypto top-up
)

// is an append-only ledger row; Coins is a signed delta (negative for
// spends) and AdminID is nil for system-triggered changes
type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AdminID   *string   `json:"admin_id"`
	Coins     int64     `json:"coins"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
