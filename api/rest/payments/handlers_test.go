package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/personachat/server/internal/payments"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreditor struct {
	err   error
	calls int
}

func (s *stubCreditor) AddCoins(_ context.Context, userID string, delta int64, _ *string, _ ledger.Type) (*users.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &users.User{ID: userID, Coins: &delta}, nil
}

func confirmTestRouter(store *payments.Store, creditor *stubCreditor, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/payments/crypto/:id/confirm", Confirm(store, creditor))
	return r
}

func postConfirm(t *testing.T, r *gin.Engine, paymentID string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/crypto/"+paymentID+"/confirm", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestConfirm_CreditsAndConsumes(t *testing.T) {
	store := payments.NewStore(time.Hour)
	payment, err := store.Create("user-1", 500)
	require.NoError(t, err)

	creditor := &stubCreditor{}
	r := confirmTestRouter(store, creditor, "user-1")

	w := postConfirm(t, r, payment.ID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, creditor.calls)
	assert.Equal(t, 0, store.PendingCount())

	// second confirm of the same payment fails
	w = postConfirm(t, r, payment.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, creditor.calls)
}

func TestConfirm_CreditFailureKeepsPaymentRetriable(t *testing.T) {
	store := payments.NewStore(time.Hour)
	payment, err := store.Create("user-1", 500)
	require.NoError(t, err)

	creditor := &stubCreditor{err: errors.New("db down")}
	r := confirmTestRouter(store, creditor, "user-1")

	w := postConfirm(t, r, payment.ID)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, creditor.calls)
	assert.Equal(t, 1, store.PendingCount(), "a failed credit must not consume the payment")

	// once the ledger recovers the same payment confirms cleanly
	creditor.err = nil
	w = postConfirm(t, r, payment.ID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, creditor.calls)
	assert.Equal(t, 0, store.PendingCount())
}

func TestConfirm_ForeignPaymentNotFound(t *testing.T) {
	store := payments.NewStore(time.Hour)
	payment, err := store.Create("user-1", 500)
	require.NoError(t, err)

	creditor := &stubCreditor{}
	r := confirmTestRouter(store, creditor, "user-2")

	w := postConfirm(t, r, payment.ID)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, creditor.calls)
	assert.Equal(t, 1, store.PendingCount())
}
