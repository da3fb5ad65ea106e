package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/personachat/server/internal/config"
	"codeberg.org/personachat/server/internal/llm"
	"codeberg.org/personachat/server/internal/logger"
	"codeberg.org/personachat/server/internal/migrations"
	"codeberg.org/personachat/server/internal/payments"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/conversations"
	"codeberg.org/personachat/server/personachat/ledger"
	"codeberg.org/personachat/server/personachat/plans"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pending mock payments are held in memory for this long before they
// lapse
const paymentTTL = 30 * time.Minute

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := migrations.Run(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; managed Postgres poolers hand out few
	// connections, and transaction-mode PgBouncer cannot run the
	// extended protocol
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sysRepo := sysconfig.NewRepository(db)

	// legacy env-var Grok key becomes the system pool key unless an
	// admin already set one
	if cfg.GrokAPIKey != "" {
		if err := sysRepo.SeedProviderKey(ctx, string(llm.ProviderGrok), cfg.GrokAPIKey); err != nil {
			logger.ErrorErr(err, "failed to seed grok provider key")
		}
	}

	if cfg.GuestMessageLimit > 0 {
		if err := sysRepo.SetGuestMessageLimit(ctx, cfg.GuestMessageLimit); err != nil {
			logger.ErrorErr(err, "failed to apply guest message limit")
		}
	}

	server := &Server{
		db:           db,
		config:       cfg,
		userRepo:     users.NewRepository(db),
		planRepo:     plans.NewRepository(db),
		configRepo:   aiconfigs.NewRepository(db),
		convRepo:     conversations.NewRepository(db),
		sysRepo:      sysRepo,
		coinLedger:   ledger.New(db),
		subMgr:       subscriptions.New(db),
		paymentStore: payments.NewStore(paymentTTL),
		router:       gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}

// closes the database pool
func (s *Server) Close() {
	s.db.Close()
}
