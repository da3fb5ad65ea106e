package aiconfigs

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// mounts the persona endpoints. Listing works for guests; management
// requires authentication and the ai permission.
func RegisterRoutes(router *gin.RouterGroup, configRepo *aiconfigs.Repository, userRepo *users.Repository, subMgr *subscriptions.Manager) {
	group := router.Group("/ai-configs")

	group.GET("", auth.OptionalAuthMiddleware(), List(configRepo, subMgr))
	group.GET("/:id", Get(configRepo))

	authed := group.Group("")
	authed.Use(auth.AuthMiddleware())
	{
		authed.GET("/manageable", ListManageable(configRepo, userRepo))
		authed.POST("", Create(configRepo, userRepo))
		authed.PUT("/:id", Update(configRepo, userRepo))
		authed.DELETE("/:id", Delete(configRepo, userRepo))
	}
}
