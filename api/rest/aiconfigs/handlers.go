package aiconfigs

import (
	"errors"
	"net/http"
	"time"

	"codeberg.org/personachat/server/internal/auth"
	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/aiconfigs"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List personas visible to the caller
// @Description Guests see public trial personas; subscribers see all
// public personas plus their own.
// @Tags aiconfigs
// @Produce json
// @Success 200 {array} aiconfigs.AIConfig
// @Router /api/v1/ai-configs [get]
func List(configRepo *aiconfigs.Repository, subMgr *subscriptions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authenticated := auth.GetUserID(c)

		if !authenticated {
			configs, err := configRepo.ListPublic(c.Request.Context())
			if err != nil {
				apierrors.InternalError(c, "error.list_configs_failed", err)
				return
			}
			c.JSON(http.StatusOK, aiconfigs.Visible(nil, false, configs))
			return
		}

		user, err := subMgr.CheckStatus(c.Request.Context(), userID)
		if err != nil {
			apierrors.Unauthorized(c, "")
			return
		}

		configs, err := configRepo.ListForUser(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "error.list_configs_failed", err)
			return
		}

		active := subscriptions.StatusOf(user, time.Now()).Active()
		c.JSON(http.StatusOK, aiconfigs.Visible(user, active, configs))
	}
}

// ListManageable godoc
// @Summary List personas the caller may edit
// @Tags aiconfigs
// @Produce json
// @Success 200 {array} aiconfigs.AIConfig
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai-configs/manageable [get]
// @Security BearerAuth
func ListManageable(configRepo *aiconfigs.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireUser(c, userRepo)
		if !ok {
			return
		}

		var (
			configs []aiconfigs.AIConfig
			err     error
		)
		if user.IsAdmin {
			configs, err = configRepo.ListAll(c.Request.Context())
		} else {
			configs, err = configRepo.ListByOwner(c.Request.Context(), user.ID)
		}
		if err != nil {
			apierrors.InternalError(c, "error.list_configs_failed", err)
			return
		}

		c.JSON(http.StatusOK, aiconfigs.Manageable(user, configs))
	}
}

// Get godoc
// @Summary Get a persona by id
// @Tags aiconfigs
// @Produce json
// @Param id path string true "Config ID"
// @Success 200 {object} aiconfigs.AIConfig
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/ai-configs/{id} [get]
func Get(configRepo *aiconfigs.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := configRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierrors.NotFound(c, "ai config")
			return
		}

		c.JSON(http.StatusOK, cfg)
	}
}

// Create godoc
// @Summary Create a persona
// @Description Requires the ai permission or admin.
// @Tags aiconfigs
// @Accept json
// @Produce json
// @Param request body aiconfigs.SaveConfigRequest true "Persona data"
// @Success 201 {object} aiconfigs.AIConfig
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/ai-configs [post]
// @Security BearerAuth
func Create(configRepo *aiconfigs.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireConfigEditor(c, userRepo)
		if !ok {
			return
		}

		var req aiconfigs.SaveConfigRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		cfg, err := configRepo.Create(c.Request.Context(), user.ID, req)
		if err != nil {
			apierrors.InternalError(c, "error.create_config_failed", err)
			return
		}

		c.JSON(http.StatusCreated, cfg)
	}
}

// Update godoc
// @Summary Update a persona
// @Tags aiconfigs
// @Accept json
// @Produce json
// @Param id path string true "Config ID"
// @Param request body aiconfigs.SaveConfigRequest true "Persona data"
// @Success 200 {object} aiconfigs.AIConfig
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/ai-configs/{id} [put]
// @Security BearerAuth
func Update(configRepo *aiconfigs.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireConfigEditor(c, userRepo)
		if !ok {
			return
		}

		var req aiconfigs.SaveConfigRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		ownerID := user.ID
		if user.IsAdmin {
			// admins edit regardless of ownership
			existing, err := configRepo.Get(c.Request.Context(), c.Param("id"))
			if err != nil {
				apierrors.NotFound(c, "ai config")
				return
			}
			ownerID = existing.OwnerID
		}

		cfg, err := configRepo.Update(c.Request.Context(), c.Param("id"), ownerID, req)
		if err != nil {
			if errors.Is(err, aiconfigs.ErrConfigNotFound) {
				apierrors.NotFound(c, "ai config")
				return
			}
			apierrors.InternalError(c, "error.update_config_failed", err)
			return
		}

		c.JSON(http.StatusOK, cfg)
	}
}

// Delete godoc
// @Summary Delete a persona
// @Tags aiconfigs
// @Produce json
// @Param id path string true "Config ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/ai-configs/{id} [delete]
// @Security BearerAuth
func Delete(configRepo *aiconfigs.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireConfigEditor(c, userRepo)
		if !ok {
			return
		}

		ownerID := user.ID
		if user.IsAdmin {
			existing, err := configRepo.Get(c.Request.Context(), c.Param("id"))
			if err != nil {
				apierrors.NotFound(c, "ai config")
				return
			}
			ownerID = existing.OwnerID
		}

		if err := configRepo.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
			if errors.Is(err, aiconfigs.ErrConfigNotFound) {
				apierrors.NotFound(c, "ai config")
				return
			}
			apierrors.InternalError(c, "error.delete_config_failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// loads the calling user or writes a 401
func requireUser(c *gin.Context, userRepo *users.Repository) (*users.User, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return nil, false
	}

	user, err := userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		apierrors.Unauthorized(c, "")
		return nil, false
	}

	return user, true
}

// loads the calling user and checks they may manage personas
func requireConfigEditor(c *gin.Context, userRepo *users.Repository) (*users.User, bool) {
	user, ok := requireUser(c, userRepo)
	if !ok {
		return nil, false
	}

	if !user.IsAdmin && !auth.HasPermission(user.Permissions, auth.PermissionAI) {
		apierrors.Forbidden(c, "error.ai_permission_required")
		return nil, false
	}

	return user, true
}
