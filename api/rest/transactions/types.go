package transactions

// ManualTransactionRequest is an admin grant or correction. Negative
// coins deduct; the ledger rejects deltas that would underflow.
type ManualTransactionRequest struct {
	UserID string `json:"userId" binding:"required"`
	Coins  int64  `json:"coins" binding:"required"`
}
