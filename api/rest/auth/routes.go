package auth

import (
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository, subMgr *subscriptions.Manager) {
	group := router.Group("/auth")

	group.POST("/register", Register(userRepo))
	group.POST("/login", Login(userRepo, subMgr))
}
