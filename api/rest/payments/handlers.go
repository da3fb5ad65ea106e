package payments

import (
	"context"
	"errors"
	"net/http"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/internal/metrics"
	"codeberg.org/personachat/server/internal/payments"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// the slice of the ledger the confirm flow needs
type coinCreditor interface {
	AddCoins(ctx context.Context, userID string, delta int64, adminID *string, txType ledger.Type) (*users.User, error)
}

// Create godoc
// @Summary Start a mock crypto top-up
// @Description Returns a pending payment with a deposit address. No
// coins move until the payment is confirmed.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Coins to buy"
// @Success 201 {object} payments.PendingPayment
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/payments/crypto [post]
// @Security BearerAuth
func Create(store *payments.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req CreatePaymentRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		payment, err := store.Create(userID, req.Coins)
		if err != nil {
			apierrors.InternalError(c, "error.create_payment_failed", err)
			return
		}

		c.JSON(http.StatusCreated, payment)
	}
}

// Confirm godoc
// @Summary Confirm a pending top-up and credit the coins
// @Description Confirmation is one-shot; a second confirm of the same
// payment fails.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} users.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 410 {object} errors.ErrorResponse
// @Router /api/v1/payments/crypto/{id}/confirm [post]
// @Security BearerAuth
func Confirm(store *payments.Store, coinLedger coinCreditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		paymentID := c.Param("id")

		// ownership check before the destructive confirm
		if pending, found := store.Get(paymentID); !found || pending.UserID != userID {
			apierrors.NotFound(c, "payment")
			return
		}

		payment, err := store.Confirm(paymentID)
		if err != nil {
			switch {
			case errors.Is(err, payments.ErrPaymentExpired):
				apierrors.BadRequest(c, "error.payment_expired", nil)
			default:
				apierrors.NotFound(c, "payment")
			}
			return
		}

		user, err := coinLedger.AddCoins(c.Request.Context(), userID, payment.Coins, nil, ledger.TypeCrypto)
		if err != nil {
			// put the payment back so the client can retry the confirm
			store.Restore(payment)
			apierrors.InternalError(c, "error.credit_failed", err)
			return
		}

		metrics.CoinMutations.WithLabelValues(string(ledger.TypeCrypto)).Inc()
		c.JSON(http.StatusOK, user)
	}
}
