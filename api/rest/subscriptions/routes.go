package subscriptions

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"github.com/gin-gonic/gin"
)

// mounts the subscription endpoints
func RegisterRoutes(router *gin.RouterGroup, subMgr *subscriptions.Manager) {
	group := router.Group("/subscriptions")
	group.Use(auth.AuthMiddleware())
	{
		group.POST("/purchase", Purchase(subMgr))
		group.GET("/status", Status(subMgr))
	}
}
