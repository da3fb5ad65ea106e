package conversations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrConversationNotFound = errors.New("conversation not found")

// creates a new conversation repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanConversation(r pgx.Row) (*Conversation, error) {
	var conv Conversation

	err := r.Scan(
		&conv.ID,
		&conv.UserID,
		&conv.AIConfigID,
		&conv.Messages,
		&conv.StartTime,
		&conv.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConversationNotFound
	}

	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// creates a new thread; userID is nil for guest conversations
func (r *Repository) Create(ctx context.Context, userID *string, aiConfigID string, messages []Message) (*Conversation, error) {
	if messages == nil {
		messages = []Message{}
	}

	return scanConversation(r.db.QueryRow(ctx, queryCreate, userID, aiConfigID, messages))
}

// finds a conversation by its ID
func (r *Repository) Get(ctx context.Context, conversationID string) (*Conversation, error) {
	return scanConversation(r.db.QueryRow(ctx, queryGet, conversationID))
}

// lists a user's conversations, newest first; guest threads are never
// listed
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Conversation, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Conversation

	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *conv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// overwrites the full message array for a turn
func (r *Repository) ReplaceMessages(ctx context.Context, conversationID string, messages []Message) (*Conversation, error) {
	if messages == nil {
		messages = []Message{}
	}

	return scanConversation(r.db.QueryRow(ctx, queryReplaceMessages, messages, conversationID))
}

// removes a conversation the user owns
func (r *Repository) Delete(ctx context.Context, conversationID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, conversationID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConversationNotFound
	}

	return nil
}
