package conversations

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles conversation database operations
type Repository struct {
	db *pgxpool.Pool
}

// is a single chat message; Image carries an optional data URL
type Message struct {
	Role  string `json:"role" binding:"required,oneof=user ai"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// represents a chat thread. UserID is nil for guest conversations.
// Messages are replaced wholesale on every turn, matching the client
// contract of posting the full history back.
type Conversation struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id"`
	AIConfigID string    `json:"ai_config_id"`
	Messages   []Message `json:"messages"`
	StartTime  time.Time `json:"start_time"`
	UpdatedAt  time.Time `json:"updated_at"`
}
