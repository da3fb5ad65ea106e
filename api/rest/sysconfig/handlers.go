package sysconfig

import (
	"net/http"

	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/sysconfig"
	"github.com/gin-gonic/gin"
)

// Get godoc
// @Summary Get the shared system configuration (admin)
// @Description Provider keys are never serialized; only the guest
// limit and timestamps are returned.
// @Tags sysconfig
// @Produce json
// @Success 200 {object} sysconfig.SystemConfig
// @Router /api/v1/admin/system-config [get]
// @Security BearerAuth
func Get(sysRepo *sysconfig.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := sysRepo.Get(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "error.system_config_unavailable", err)
			return
		}

		c.JSON(http.StatusOK, cfg)
	}
}

// SetProviderKey godoc
// @Summary Rotate a system provider API key (admin)
// @Tags sysconfig
// @Accept json
// @Produce json
// @Param request body SetProviderKeyRequest true "Provider and key"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/system-config/provider-keys [put]
// @Security BearerAuth
func SetProviderKey(sysRepo *sysconfig.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetProviderKeyRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if err := sysRepo.SetProviderKey(c.Request.Context(), req.Provider, req.Key); err != nil {
			apierrors.InternalError(c, "error.update_system_config_failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// SetGuestLimit godoc
// @Summary Change the guest message quota (admin)
// @Tags sysconfig
// @Accept json
// @Produce json
// @Param request body SetGuestLimitRequest true "New quota"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/system-config/guest-limit [put]
// @Security BearerAuth
func SetGuestLimit(sysRepo *sysconfig.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetGuestLimitRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if err := sysRepo.SetGuestMessageLimit(c.Request.Context(), *req.GuestMessageLimit); err != nil {
			apierrors.InternalError(c, "error.update_system_config_failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
