package conversations

import (
	"errors"
	"net/http"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/conversations"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List the caller's conversations
// @Tags conversations
// @Produce json
// @Success 200 {array} conversations.Conversation
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/conversations [get]
// @Security BearerAuth
func List(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		list, err := convRepo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "error.list_conversations_failed", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// Get godoc
// @Summary Get one of the caller's conversations
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} conversations.Conversation
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/conversations/{id} [get]
// @Security BearerAuth
func Get(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		conv, err := convRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierrors.NotFound(c, "conversation")
			return
		}

		// guest transcripts have no owner and are never readable here
		if conv.UserID == nil || *conv.UserID != userID {
			apierrors.NotFound(c, "conversation")
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// Delete godoc
// @Summary Delete one of the caller's conversations
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/conversations/{id} [delete]
// @Security BearerAuth
func Delete(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		err := convRepo.Delete(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, conversations.ErrConversationNotFound) {
				apierrors.NotFound(c, "conversation")
				return
			}
			apierrors.InternalError(c, "error.delete_conversation_failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
