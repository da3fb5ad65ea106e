package users

import (
	"net/http"

	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List all accounts (admin)
// @Tags users
// @Produce json
// @Success 200 {array} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/admin/users [get]
// @Security BearerAuth
func List(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := userRepo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "error.list_users_failed", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// Get godoc
// @Summary Get an account by id (admin)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} users.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id} [get]
// @Security BearerAuth
func Get(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userRepo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// Create godoc
// @Summary Provision an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account data"
// @Success 201 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/users [post]
// @Security BearerAuth
func Create(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Coins != nil && *req.Coins < 0 {
			errors.BadRequest(c, "error.negative_coins", nil)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "error.create_user_failed", err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), users.CreateUserRequest{
			Email:        req.Email,
			PasswordHash: hash,
			Name:         req.Name,
			IsAdmin:      req.IsAdmin,
			Coins:        req.Coins,
		})
		if err != nil {
			errors.InternalError(c, "error.create_user_failed", err)
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// SetActive godoc
// @Summary Enable or soft-disable an account (admin)
// @Description Disabled accounts keep their data but cannot log in.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetActiveRequest true "Active flag"
// @Success 200 {object} users.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id}/active [put]
// @Security BearerAuth
func SetActive(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetActiveRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// SetPermissions godoc
// @Summary Replace an account's permission tags (admin)
// @Description Tags outside the closed permission set are rejected.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetPermissionsRequest true "Permission tags"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id}/permissions [put]
// @Security BearerAuth
func SetPermissions(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetPermissionsRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := auth.ParsePermissions(req.Permissions); err != nil {
			errors.BadRequest(c, "error.unknown_permission", err)
			return
		}

		user, err := userRepo.SetPermissions(c.Request.Context(), c.Param("id"), req.Permissions)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// SetAPIKey godoc
// @Summary Store a personal provider API key
// @Tags users
// @Accept json
// @Produce json
// @Param request body SetAPIKeyRequest true "Provider key"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/users/me/api-keys [put]
// @Security BearerAuth
func SetAPIKey(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req SetAPIKeyRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.SetAPIKey(c.Request.Context(), userID, req.Provider, req.Key)
		if err != nil {
			errors.InternalError(c, "error.set_api_key_failed", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// DeleteAPIKey godoc
// @Summary Remove a personal provider API key
// @Tags users
// @Produce json
// @Param provider path string true "Provider"
// @Success 200 {object} users.User
// @Router /api/v1/users/me/api-keys/{provider} [delete]
// @Security BearerAuth
func DeleteAPIKey(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.DeleteAPIKey(c.Request.Context(), userID, c.Param("provider"))
		if err != nil {
			errors.InternalError(c, "error.delete_api_key_failed", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// Me godoc
// @Summary Get the calling account
// @Tags users
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/users/me [get]
// @Security BearerAuth
func Me(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
