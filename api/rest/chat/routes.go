package chat

import (
	"time"

	"codeberg.org/personachat/server/internal/auth"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// chat turns are the expensive path, so they get their own per-IP
// rate limit on top of authentication
var chatRate = limiter.Rate{
	Period: time.Minute,
	Limit:  30,
}

// mounts the SSE chat endpoint. Guests are allowed through; the
// handler enforces their message quota.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	rateMiddleware := mgin.NewMiddleware(limiter.New(memory.NewStore(), chatRate))

	group := router.Group("/chat")
	group.Use(rateMiddleware, auth.OptionalAuthMiddleware())
	{
		group.POST("/stream", handler.Stream())
	}
}
