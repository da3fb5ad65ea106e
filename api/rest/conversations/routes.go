package conversations

import (
	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/personachat/conversations"
	"github.com/gin-gonic/gin"
)

// mounts the conversation history endpoints
func RegisterRoutes(router *gin.RouterGroup, convRepo *conversations.Repository) {
	group := router.Group("/conversations")
	group.Use(auth.AuthMiddleware())
	{
		group.GET("", List(convRepo))
		group.GET("/:id", Get(convRepo))
		group.DELETE("/:id", Delete(convRepo))
	}
}
