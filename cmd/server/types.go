package main

import (
	"codeberg.org/personachat/server/internal/config"
	"codeberg.org/personachat/server/internal/payments"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/conversations"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/plans"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	planRepo     *plans.Repository
	configRepo   *aiconfigs.Repository
	convRepo     *conversations.Repository
	sysRepo      *sysconfig.Repository
	coinLedger   *ledger.Ledger
	subMgr       *subscriptions.Manager
	paymentStore *payments.Store
	router       *gin.Engine
}
