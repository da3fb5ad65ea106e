package auth

import (
	"net/http"
	"strings"
	"time"

	"codeberg.org/personachat/server/internal/auth"
	"codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/subscriptions"
	"codeberg.org/personachat/server/personachat/users"
	"github.com/gin-gonic/gin"
)

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func Register(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := userRepo.FindByEmail(c.Request.Context(), req.Email); err == nil {
			errors.Conflict(c, "error.email_taken")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "error.registration_failed", err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), users.CreateUserRequest{
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: hash,
			Name:         req.Name,
		})
		if err != nil {
			errors.InternalError(c, "error.registration_failed", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
		if err != nil {
			errors.InternalError(c, "error.registration_failed", err)
			return
		}

		c.JSON(http.StatusCreated, SessionResponse{
			Token:              token,
			User:               user,
			SubscriptionStatus: subscriptions.StatusOf(user, time.Now()).String(),
		})
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Rejects bad credentials and soft-disabled accounts with
// @Description 401; runs lazy subscription expiry before answering.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func Login(userRepo *users.Repository, subMgr *subscriptions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			errors.Unauthorized(c, "error.invalid_credentials")
			return
		}

		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			errors.Unauthorized(c, "error.invalid_credentials")
			return
		}

		if !user.IsActive {
			errors.Unauthorized(c, "error.account_disabled")
			return
		}

		// lazy expiry: there is no background sweep, so login is one of
		// the two places stale subscriptions get cleared
		user, err = subMgr.CheckStatus(c.Request.Context(), user.ID)
		if err != nil {
			errors.InternalError(c, "error.login_failed", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
		if err != nil {
			errors.InternalError(c, "error.login_failed", err)
			return
		}

		c.JSON(http.StatusOK, SessionResponse{
			Token:              token,
			User:               user,
			SubscriptionStatus: subscriptions.StatusOf(user, time.Now()).String(),
		})
	}
}
