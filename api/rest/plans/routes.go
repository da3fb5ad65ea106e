package plans

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/plans"
	"github.com/gin-gonic/gin"
)

// mounts the public plan catalogue and the admin plan back office
func RegisterRoutes(router *gin.RouterGroup, planRepo *plans.Repository) {
	router.GET("/plans", List(planRepo))

	admin := router.Group("/admin/plans")
	admin.Use(auth.AdminAuthMiddleware())
	{
		admin.GET("", ListAll(planRepo))
		admin.POST("", Create(planRepo))
		admin.PUT("/:id", Update(planRepo))
		admin.DELETE("/:id", Delete(planRepo))
	}
}
