// Package payments holds the mock crypto payment flow. Pending
// payments live only in process memory: they are lost on restart and
// expire after a TTL. Nothing here talks to a real chain or gateway.
package payments

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExpired  = errors.New("payment expired")
)

// represents an unconfirmed mock crypto top-up
type PendingPayment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Coins     int64     `json:"coins"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// manages pending mock payments in memory
type Store struct {
	pending map[string]*PendingPayment
	mu      sync.RWMutex
	ttl     time.Duration
}

// returns a new payment store
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		pending: make(map[string]*PendingPayment),
		ttl:     ttl,
	}

	// start cleanup goroutine
	go s.cleanupExpiredPayments()

	return s
}

// creates a pending payment and the fake deposit address the client
// is told to "send" to
func (s *Store) Create(userID string, coins int64) (*PendingPayment, error) {
	if coins <= 0 {
		return nil, fmt.Errorf("coin amount must be positive, got %d", coins)
	}

	id := uuid.NewString()
	now := time.Now()

	payment := &PendingPayment{
		ID:        id,
		UserID:    userID,
		Coins:     coins,
		Address:   "mock:" + uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.pending[id] = payment
	s.mu.Unlock()

	return payment, nil
}

// retrieves a pending payment by ID
func (s *Store) Get(paymentID string) (*PendingPayment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, exists := s.pending[paymentID]
	if !exists {
		return nil, false
	}

	if time.Now().After(payment.ExpiresAt) {
		return nil, false
	}

	return payment, true
}

// removes the pending entry and returns it for crediting; confirming
// twice fails with ErrPaymentNotFound
func (s *Store) Confirm(paymentID string) (*PendingPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, exists := s.pending[paymentID]
	if !exists {
		return nil, ErrPaymentNotFound
	}

	delete(s.pending, paymentID)

	if time.Now().After(payment.ExpiresAt) {
		return nil, ErrPaymentExpired
	}

	return payment, nil
}

// puts a confirmed payment back into the pending set so it can be
// confirmed again. Used when crediting the coins fails after the
// confirm already consumed the entry.
func (s *Store) Restore(payment *PendingPayment) {
	if payment == nil {
		return
	}

	s.mu.Lock()
	s.pending[payment.ID] = payment
	s.mu.Unlock()
}

// returns the number of unconfirmed payments
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// runs periodically to remove expired payments
func (s *Store) cleanupExpiredPayments() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()

		for id, payment := range s.pending {
			if now.After(payment.ExpiresAt) {
				delete(s.pending, id)
			}
		}

		s.mu.Unlock()
	}
}
