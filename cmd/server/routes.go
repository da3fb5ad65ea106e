package main

import (
	"codeberg.org/personachat/server/api/rest/aiconfigs"
	"codeberg.org/personachat/server/api/rest/auth"
	"codeberg.org/personachat/server/api/rest/chat"
	"codeberg.org/personachat/server/api/rest/conversations"
	"codeberg.org/personachat/server/api/rest/health"
	"codeberg.org/personachat/server/api/rest/payments"
	"codeberg.org/personachat/server/api/rest/plans"
	"codeberg.org/personachat/server/api/rest/subscriptions"
	"codeberg.org/personachat/server/api/rest/sysconfig"
	"codeberg.org/personachat/server/api/rest/transactions"
	"codeberg.org/personachat/server/api/rest/users"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo, server.subMgr)
		users.RegisterRoutes(v1, server.userRepo)
		transactions.RegisterRoutes(v1, server.coinLedger)
		plans.RegisterRoutes(v1, server.planRepo)
		subscriptions.RegisterRoutes(v1, server.subMgr)
		aiconfigs.RegisterRoutes(v1, server.configRepo, server.userRepo, server.subMgr)
		conversations.RegisterRoutes(v1, server.convRepo)
		payments.RegisterRoutes(v1, server.paymentStore, server.coinLedger)
		sysconfig.RegisterRoutes(v1, server.sysRepo)
		chat.RegisterRoutes(v1, chat.NewHandler(server.configRepo, server.convRepo, server.sysRepo, server.subMgr))
	}
}
