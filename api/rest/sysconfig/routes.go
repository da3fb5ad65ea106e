package sysconfig

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"github.com/gin-gonic/gin"
)

// mounts the admin system configuration endpoints
func RegisterRoutes(router *gin.RouterGroup, sysRepo *sysconfig.Repository) {
	admin := router.Group("/admin/system-config")
	admin.Use(auth.AdminAuthMiddleware())
	{
		admin.GET("", Get(sysRepo))
		admin.PUT("/provider-keys", SetProviderKey(sysRepo))
		admin.PUT("/guest-limit", SetGuestLimit(sysRepo))
	}
}
