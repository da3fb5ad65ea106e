package payments

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/internal/payments"
	"codeberg.org/personachat/server/personachat/ledger"
	"github.com/gin-gonic/gin"
)

// mounts the mock crypto payment endpoints
func RegisterRoutes(router *gin.RouterGroup, store *payments.Store, coinLedger *ledger.Ledger) {
	group := router.Group("/payments/crypto")
	group.Use(auth.AuthMiddleware())
	{
		group.POST("", Create(store))
		group.POST("/:id/confirm", Confirm(store, coinLedger))
	}
}
