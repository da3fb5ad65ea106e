package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/internal/llm"
	"codeberg.org/personachat/server/internal/logger"
	"codeberg.org/personachat/server/internal/metrics"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/conversations"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// creates a chat handler wired to the real provider clients
func NewHandler(configRepo *aiconfigs.Repository, convRepo *conversations.Repository, sysRepo *sysconfig.Repository, subMgr *subscriptions.Manager) *Handler {
	return &Handler{
		configs:     configRepo,
		convs:       convRepo,
		sysConfig:   sysRepo,
		subs:        subMgr,
		newStreamer: llm.NewStreamer,
	}
}

// Stream godoc
// @Summary Run one chat turn against a persona, streamed over SSE
// @Description Entitlements are checked before any provider call.
// Chunks arrive as data frames; the turn ends with a done frame
// carrying the conversation id and the full response, or an error
// frame. The conversation is persisted only on a clean finish.
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param request body ChatStreamRequest true "Persona and message history"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/chat/stream [post]
func (h *Handler) Stream() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatStreamRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		ctx := c.Request.Context()

		cfg, err := h.configs.Get(ctx, req.AIConfigID)
		if err != nil {
			apierrors.NotFound(c, "ai config")
			return
		}

		userID, authenticated := auth.GetUserID(c)

		var apiKey string
		var ownerID *string

		if authenticated {
			apiKey, err = h.authorizeUser(c, cfg, userID)
			if err != nil {
				metrics.ChatTurns.WithLabelValues("rejected").Inc()
				return
			}
			ownerID = &userID
		} else {
			apiKey, err = h.authorizeGuest(c, cfg, req.Messages)
			if err != nil {
				metrics.ChatTurns.WithLabelValues("rejected").Inc()
				return
			}
		}

		streamer, err := h.newStreamer(llm.Provider(cfg.ModelType), apiKey)
		if err != nil {
			metrics.ChatTurns.WithLabelValues("rejected").Inc()
			apierrors.InsufficientConfiguration(c)
			return
		}

		// existing conversations must belong to the caller
		if req.ConversationID != "" {
			conv, err := h.convs.Get(ctx, req.ConversationID)
			if err != nil || !ownedBy(conv, ownerID) {
				apierrors.NotFound(c, "conversation")
				return
			}
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		fullResponse := ""
		streamErr := streamer.Stream(ctx, llm.ChatRequest{
			ModelName: cfg.ModelName,
			System:    cfg.TrainingContent,
			Messages:  toProviderMessages(req.Messages),
		}, func(text string) error {
			fullResponse += text
			return writeEvent(c, chunkEvent{Text: text})
		})

		if streamErr != nil {
			logger.ErrorErr(streamErr, "chat stream failed", "ai_config_id", cfg.ID)
			metrics.ChatTurns.WithLabelValues("upstream_error").Inc()
			//nolint:errcheck // the stream is already broken
			writeEvent(c, errorEvent{Error: "error.provider_unavailable"})
			return
		}

		history := append(req.Messages, conversations.Message{Role: "ai", Text: fullResponse})

		conversationID, err := h.persist(c, req.ConversationID, ownerID, cfg.ID, history)
		if err != nil {
			logger.ErrorErr(err, "failed to persist conversation", "ai_config_id", cfg.ID)
			metrics.ChatTurns.WithLabelValues("upstream_error").Inc()
			//nolint:errcheck
			writeEvent(c, errorEvent{Error: "error.persist_failed"})
			return
		}

		metrics.ChatTurns.WithLabelValues("ok").Inc()
		//nolint:errcheck
		writeEvent(c, doneEvent{ConversationID: conversationID, Done: true, FullResponse: fullResponse})
	}
}

// checks an authenticated caller's entitlements and resolves their
// personal provider key. Authenticated chat is bring-your-own-key;
// the system pool is never used on this path.
func (h *Handler) authorizeUser(c *gin.Context, cfg *aiconfigs.AIConfig, userID string) (string, error) {
	user, err := h.subs.CheckStatus(c.Request.Context(), userID)
	if err != nil {
		apierrors.Unauthorized(c, "")
		return "", err
	}

	active := subscriptions.StatusOf(user, time.Now()).Active()

	if !visibleTo(user, active, cfg) {
		if cfg.RequiresSubscription && !active {
			apierrors.SubscriptionRequired(c)
			return "", fmt.Errorf("subscription required")
		}
		apierrors.NotFound(c, "ai config")
		return "", fmt.Errorf("config not visible")
	}

	apiKey := user.APIKeys[cfg.ModelType]
	if apiKey == "" {
		apierrors.InsufficientConfiguration(c)
		return "", fmt.Errorf("no personal key for %s", cfg.ModelType)
	}

	return apiKey, nil
}

// checks the guest message quota and resolves the system provider
// key. Both checks happen before any provider call.
func (h *Handler) authorizeGuest(c *gin.Context, cfg *aiconfigs.AIConfig, messages []conversations.Message) (string, error) {
	if !visibleTo(nil, false, cfg) {
		apierrors.NotFound(c, "ai config")
		return "", fmt.Errorf("config not visible to guests")
	}

	sysCfg, err := h.sysConfig.Get(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "error.system_config_unavailable", err)
		return "", err
	}

	if countUserMessages(messages) > sysCfg.GuestMessageLimit {
		apierrors.GuestLimitExceeded(c)
		return "", fmt.Errorf("guest limit exceeded")
	}

	apiKey := sysCfg.ProviderKeys[cfg.ModelType]
	if apiKey == "" {
		apierrors.InsufficientConfiguration(c)
		return "", fmt.Errorf("no system key for %s", cfg.ModelType)
	}

	return apiKey, nil
}

// updates or creates the conversation with the full turn history
func (h *Handler) persist(c *gin.Context, conversationID string, ownerID *string, configID string, history []conversations.Message) (string, error) {
	ctx := c.Request.Context()

	if conversationID != "" {
		conv, err := h.convs.ReplaceMessages(ctx, conversationID, history)
		if err != nil {
			return "", err
		}
		return conv.ID, nil
	}

	conv, err := h.convs.Create(ctx, ownerID, configID, history)
	if err != nil {
		return "", err
	}
	return conv.ID, nil
}

// single-config form of the persona visibility rules
func visibleTo(user *users.User, hasActiveSubscription bool, cfg *aiconfigs.AIConfig) bool {
	return len(aiconfigs.Visible(user, hasActiveSubscription, []aiconfigs.AIConfig{*cfg})) == 1
}

func ownedBy(conv *conversations.Conversation, ownerID *string) bool {
	if conv.UserID == nil {
		return ownerID == nil
	}
	return ownerID != nil && *conv.UserID == *ownerID
}

func countUserMessages(messages []conversations.Message) int {
	count := 0
	for _, m := range messages {
		if m.Role == "user" {
			count++
		}
	}
	return count
}

func toProviderMessages(messages []conversations.Message) []llm.Message {
	result := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, llm.Message{Role: m.Role, Text: m.Text})
	}
	return result
}

// marshals the payload into one SSE data frame and flushes it so the
// client sees chunks as they arrive
func writeEvent(c *gin.Context, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
		return err
	}

	c.Writer.Flush()
	return nil
}
