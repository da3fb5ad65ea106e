package payments

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	payment, err := store.Create("user-1", 100)

	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, "user-1", payment.UserID)
	assert.Equal(t, int64(100), payment.Coins)
	assert.True(t, strings.HasPrefix(payment.Address, "mock:"))
	assert.True(t, payment.ExpiresAt.After(payment.CreatedAt))

	got, found := store.Get(payment.ID)
	require.True(t, found)
	assert.Equal(t, payment.ID, got.ID)
}

func TestStore_Create_RejectsNonPositive(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Create("user-1", 0)
	assert.Error(t, err)

	_, err = store.Create("user-1", -50)
	assert.Error(t, err)

	assert.Equal(t, 0, store.PendingCount())
}

func TestStore_Confirm(t *testing.T) {
	store := NewStore(time.Hour)

	payment, err := store.Create("user-1", 250)
	require.NoError(t, err)

	confirmed, err := store.Confirm(payment.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(250), confirmed.Coins)
	assert.Equal(t, 0, store.PendingCount())
}

func TestStore_Confirm_IsOneShot(t *testing.T) {
	store := NewStore(time.Hour)

	payment, err := store.Create("user-1", 250)
	require.NoError(t, err)

	_, err = store.Confirm(payment.ID)
	require.NoError(t, err)

	_, err = store.Confirm(payment.ID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestStore_Confirm_UnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Confirm("no-such-payment")

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestStore_Confirm_Expired(t *testing.T) {
	store := NewStore(time.Millisecond)

	payment, err := store.Create("user-1", 100)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = store.Confirm(payment.ID)

	assert.ErrorIs(t, err, ErrPaymentExpired)
	assert.Equal(t, 0, store.PendingCount(), "expired payment should be removed")
}

func TestStore_Get_HidesExpired(t *testing.T) {
	store := NewStore(time.Millisecond)

	payment, err := store.Create("user-1", 100)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, found := store.Get(payment.ID)
	assert.False(t, found)
}

func TestStore_Restore_MakesConfirmRetriable(t *testing.T) {
	store := NewStore(time.Hour)

	payment, err := store.Create("user-1", 100)
	require.NoError(t, err)

	confirmed, err := store.Confirm(payment.ID)
	require.NoError(t, err)
	require.Equal(t, 0, store.PendingCount())

	store.Restore(confirmed)

	again, err := store.Confirm(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, again.ID)
	assert.Equal(t, int64(100), again.Coins)
}
