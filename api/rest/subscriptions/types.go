package subscriptions

import (
	"codeberg.org/personachat/server/personachat/users"
)

type PurchaseRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// PurchaseResponse carries the updated account and its entitlement
// status after a purchase or status check.
type PurchaseResponse struct {
	User   *users.User `json:"user"`
	Status string      `json:"status"`
}
