package subscriptions

import (
	"errors"
	"net/http"
	"time"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/internal/metrics"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"github.com/gin-gonic/gin"
)

// Purchase godoc
// @Summary Buy or renew a plan for the calling account
// @Description Debits the plan's coin cost and extends any unexpired
// subscription rather than resetting it.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Plan to buy"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/subscriptions/purchase [post]
// @Security BearerAuth
func Purchase(subMgr *subscriptions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req PurchaseRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		user, err := subMgr.Purchase(c.Request.Context(), userID, req.PlanID)
		if err != nil {
			switch {
			case errors.Is(err, subscriptions.ErrPlanNotFound):
				metrics.SubscriptionPurchases.WithLabelValues("plan_not_found").Inc()
				apierrors.PlanNotFound(c)
			case errors.Is(err, subscriptions.ErrInsufficientFunds):
				metrics.SubscriptionPurchases.WithLabelValues("insufficient_funds").Inc()
				apierrors.InsufficientFunds(c)
			default:
				apierrors.InternalError(c, "error.purchase_failed", err)
			}
			return
		}

		metrics.SubscriptionPurchases.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, PurchaseResponse{
			User:   user,
			Status: subscriptions.StatusOf(user, time.Now()).String(),
		})
	}
}

// Status godoc
// @Summary Get the calling account's entitlement status
// @Description Lapsed subscriptions are cleared on read.
// @Tags subscriptions
// @Produce json
// @Success 200 {object} PurchaseResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/subscriptions/status [get]
// @Security BearerAuth
func Status(subMgr *subscriptions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := subMgr.CheckStatus(c.Request.Context(), userID)
		if err != nil {
			apierrors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, PurchaseResponse{
			User:   user,
			Status: subscriptions.StatusOf(user, time.Now()).String(),
		})
	}
}
