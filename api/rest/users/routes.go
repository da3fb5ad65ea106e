package users

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// mounts self-service account endpoints and the admin user back office
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	me := router.Group("/users/me")
	me.Use(auth.AuthMiddleware())
	{
		me.GET("", Me(userRepo))
		me.PUT("/api-keys", SetAPIKey(userRepo))
		me.DELETE("/api-keys/:provider", DeleteAPIKey(userRepo))
	}

	admin := router.Group("/admin/users")
	admin.Use(auth.AdminAuthMiddleware())
	{
		admin.GET("", List(userRepo))
		admin.POST("", Create(userRepo))
		admin.GET("/:id", Get(userRepo))
		admin.PUT("/:id/active", SetActive(userRepo))
		admin.PUT("/:id/permissions", SetPermissions(userRepo))
	}
}
