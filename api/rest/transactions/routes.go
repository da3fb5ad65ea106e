package transactions

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/ledger"
	"github.com/gin-gonic/gin"
)

// mounts the ledger endpoints
func RegisterRoutes(router *gin.RouterGroup, coinLedger *ledger.Ledger) {
	history := router.Group("/users/:id/transactions")
	history.Use(auth.AuthMiddleware())
	{
		history.GET("", ListForUser(coinLedger))
	}

	admin := router.Group("/admin/transactions")
	admin.Use(auth.AdminAuthMiddleware())
	{
		admin.POST("", CreateManual(coinLedger))
	}
}
