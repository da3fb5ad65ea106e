package aiconfigs

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles persona database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a configurable AI persona. The three visibility flags
// are independent booleans; their combination semantics live in
// visibility.go.
type AIConfig struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"owner_id"`
	Name                 string    `json:"name"`
	ModelType            string    `json:"model_type"`
	ModelName            string    `json:"model_name"`
	IsPublic             bool      `json:"is_public"`
	IsTrialAllowed       bool      `json:"is_trial_allowed"`
	RequiresSubscription bool      `json:"requires_subscription"`
	TrainingContent      string    `json:"training_content,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// contains data for creating or updating a persona
type SaveConfigRequest struct {
	Name                 string `json:"name" binding:"required"`
	ModelType            string `json:"model_type" binding:"required,oneof=gemini gpt grok"`
	ModelName            string `json:"model_name"`
	IsPublic             bool   `json:"is_public"`
	IsTrialAllowed       bool   `json:"is_trial_allowed"`
	RequiresSubscription bool   `json:"requires_subscription"`
	TrainingContent      string `json:"training_content"`
}
