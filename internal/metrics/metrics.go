// Package metrics exposes the Prometheus instrumentation shared by the
// REST handlers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// counts completed chat turns by outcome (ok, rejected, upstream_error)
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "personachat_chat_turns_total",
		Help: "Chat relay turns by outcome.",
	}, []string{"outcome"})

	// counts coin ledger mutations by transaction type
	CoinMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "personachat_coin_mutations_total",
		Help: "Coin balance mutations by ledger transaction type.",
	}, []string{"type"})

	// counts subscription purchases by result (ok, insufficient_funds, plan_not_found)
	SubscriptionPurchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "personachat_subscription_purchases_total",
		Help: "Subscription purchase attempts by result.",
	}, []string{"result"})
)
