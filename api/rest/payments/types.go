package payments

type CreatePaymentRequest struct {
	Coins int64 `json:"coins" binding:"required,gt=0"`
}
