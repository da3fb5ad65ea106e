package chat

import (
	"context"

	"codeberg.org/personachat/server/internal/llm"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/conversations"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"codeberg.org/personachat/server/personachat/users"
)

// ChatStreamRequest carries the persona and the full message history
// for one turn. The last message is the new user message; the client
// posts the whole transcript back every turn.
type ChatStreamRequest struct {
	AIConfigID     string                  `json:"aiConfigId" binding:"required"`
	ConversationID string                  `json:"conversationId"`
	Messages       []conversations.Message `json:"messages" binding:"required,min=1,dive"`
}

// SSE frame payloads. A turn is a sequence of chunk frames terminated
// by exactly one done or error frame.
type chunkEvent struct {
	Text string `json:"text"`
}

type doneEvent struct {
	ConversationID string `json:"conversationId"`
	Done           bool   `json:"done"`
	FullResponse   string `json:"fullResponse"`
}

type errorEvent struct {
	Error string `json:"error"`
}

// narrow views over the repositories, so turn logic can be exercised
// without a database
type configStore interface {
	Get(ctx context.Context, configID string) (*aiconfigs.AIConfig, error)
}

type conversationStore interface {
	Create(ctx context.Context, userID *string, aiConfigID string, messages []conversations.Message) (*conversations.Conversation, error)
	Get(ctx context.Context, conversationID string) (*conversations.Conversation, error)
	ReplaceMessages(ctx context.Context, conversationID string, messages []conversations.Message) (*conversations.Conversation, error)
}

type systemConfigStore interface {
	Get(ctx context.Context) (*sysconfig.SystemConfig, error)
}

type statusChecker interface {
	CheckStatus(ctx context.Context, userID string) (*users.User, error)
}

type streamerFactory func(provider llm.Provider, apiKey string) (llm.Streamer, error)

// Handler relays chat turns between clients and LLM providers over
// SSE, enforcing entitlements before any upstream call.
type Handler struct {
	configs     configStore
	convs       conversationStore
	sysConfig   systemConfigStore
	subs        statusChecker
	newStreamer streamerFactory
}
