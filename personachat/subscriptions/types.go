package subscriptions

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// enforces the time-boxed subscription state machine over
// (subscription_plan_id, subscription_expires_at)
type Manager struct {
	db *pgxpool.Pool
}

// Status is the explicit subscription state. Deriving it once here
// replaces scattered nullable-field comparisons: a perpetual plan
// (set plan id, nil expiry) is active, not "never active by date".
type Status int

const (
	StatusNone Status = iota
	StatusActiveTimed
	StatusActivePerpetual
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusActiveTimed:
		return "active"
	case StatusActivePerpetual:
		return "active_perpetual"
	case StatusExpired:
		return "expired"
	default:
		return "none"
	}
}

// reports whether the state grants subscriber entitlements
func (s Status) Active() bool {
	return s == StatusActiveTimed || s == StatusActivePerpetual
}
