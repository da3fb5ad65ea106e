package transactions

import (
	"errors"
	"net/http"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/internal/metrics"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// CreateManual godoc
// @Summary Grant or deduct coins manually (admin)
// @Description Records an auditable ledger row attributed to the acting admin.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body ManualTransactionRequest true "Target user and delta"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/transactions [post]
// @Security BearerAuth
func CreateManual(coinLedger *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req ManualTransactionRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := coinLedger.AddCoins(c.Request.Context(), req.UserID, req.Coins, &adminID, ledger.TypeManual)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrUserNotFound):
				apierrors.NotFound(c, "user")
			case errors.Is(err, ledger.ErrInsufficientFunds):
				apierrors.InsufficientFunds(c)
			default:
				apierrors.InternalError(c, "error.transaction_failed", err)
			}
			return
		}

		metrics.CoinMutations.WithLabelValues(string(ledger.TypeManual)).Inc()
		c.JSON(http.StatusOK, user)
	}
}

// ListForUser godoc
// @Summary List a user's ledger history
// @Description Users can read their own history; admins can read anyone's.
// @Tags transactions
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} ledger.Transaction
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/users/{id}/transactions [get]
// @Security BearerAuth
func ListForUser(coinLedger *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		targetID := c.Param("id")
		if targetID != callerID && !c.GetBool("is_admin") {
			apierrors.Forbidden(c, "")
			return
		}

		list, err := coinLedger.ListForUser(c.Request.Context(), targetID)
		if err != nil {
			apierrors.InternalError(c, "error.list_transactions_failed", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
