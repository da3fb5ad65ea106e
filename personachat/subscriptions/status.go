package subscriptions

import (
	"time"

	"codeberg.org/personachat/server/personachat/users"
)

// derives the subscription state from the user's entitlement fields
func StatusOf(user *users.User, now time.Time) Status {
	if user == nil || user.SubscriptionPlanID == nil {
		return StatusNone
	}

	if user.SubscriptionExpiresAt == nil {
		return StatusActivePerpetual
	}

	if user.SubscriptionExpiresAt.After(now) {
		return StatusActiveTimed
	}

	return StatusExpired
}

// computes the expiry written by a purchase: an unexpired current
// subscription extends from its existing expiry (no lost time), an
// expired or absent one starts from now, and a perpetual plan clears
// the expiry entirely
func ComputeExpiry(current *time.Time, durationDays *int, now time.Time) *time.Time {
	if durationDays == nil {
		return nil
	}

	base := now
	if current != nil && current.After(now) {
		base = *current
	}

	expiry := base.AddDate(0, 0, *durationDays)
	return &expiry
}
