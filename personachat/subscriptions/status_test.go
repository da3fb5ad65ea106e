package subscriptions

import (
	"testing"
	"time"

	"codeberg.org/personachat/server/personachat/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf_NoPlan(t *testing.T) {
	now := time.Now()

	assert.Equal(t, StatusNone, StatusOf(nil, now))
	assert.Equal(t, StatusNone, StatusOf(&users.User{}, now))
}

func TestStatusOf_Perpetual(t *testing.T) {
	planID := "plan-1"
	user := &users.User{SubscriptionPlanID: &planID}

	status := StatusOf(user, time.Now())

	assert.Equal(t, StatusActivePerpetual, status)
	assert.True(t, status.Active())
	assert.Equal(t, "active_perpetual", status.String())
}

func TestStatusOf_Timed(t *testing.T) {
	planID := "plan-1"
	now := time.Now()
	expiry := now.Add(24 * time.Hour)
	user := &users.User{SubscriptionPlanID: &planID, SubscriptionExpiresAt: &expiry}

	status := StatusOf(user, now)

	assert.Equal(t, StatusActiveTimed, status)
	assert.True(t, status.Active())
	assert.Equal(t, "active", status.String())
}

func TestStatusOf_Expired(t *testing.T) {
	planID := "plan-1"
	now := time.Now()
	expiry := now.Add(-time.Minute)
	user := &users.User{SubscriptionPlanID: &planID, SubscriptionExpiresAt: &expiry}

	status := StatusOf(user, now)

	assert.Equal(t, StatusExpired, status)
	assert.False(t, status.Active())
}

// a subscription that lapses between two reads changes status without
// any write in between
func TestStatusOf_LapsesOverTime(t *testing.T) {
	planID := "plan-1"
	now := time.Now()
	expiry := now.Add(time.Hour)
	user := &users.User{SubscriptionPlanID: &planID, SubscriptionExpiresAt: &expiry}

	assert.Equal(t, StatusActiveTimed, StatusOf(user, now))
	assert.Equal(t, StatusExpired, StatusOf(user, now.Add(2*time.Hour)))
}

func TestComputeExpiry_FreshPurchase(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	days := 30

	expiry := ComputeExpiry(nil, &days, now)

	require.NotNil(t, expiry)
	assert.Equal(t, now.AddDate(0, 0, 30), *expiry)
}

// renewing before expiry extends from the old expiry, so no paid time
// is lost
func TestComputeExpiry_ExtendsUnexpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := now.AddDate(0, 0, 10)
	days := 30

	expiry := ComputeExpiry(&current, &days, now)

	require.NotNil(t, expiry)
	assert.Equal(t, current.AddDate(0, 0, 30), *expiry)
}

// an already-expired subscription restarts from now, not from the
// stale expiry
func TestComputeExpiry_RestartsAfterLapse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := now.AddDate(0, 0, -10)
	days := 30

	expiry := ComputeExpiry(&current, &days, now)

	require.NotNil(t, expiry)
	assert.Equal(t, now.AddDate(0, 0, 30), *expiry)
}

func TestComputeExpiry_PerpetualClearsExpiry(t *testing.T) {
	now := time.Now()
	current := now.Add(time.Hour)

	assert.Nil(t, ComputeExpiry(&current, nil, now))
	assert.Nil(t, ComputeExpiry(nil, nil, now))
}
