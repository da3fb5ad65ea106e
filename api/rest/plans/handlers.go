package plans

import (
	"errors"
	"net/http"

	apierrors "codeberg.org/personachat/server/internal/errors"
	"codeberg.org/personachat/server/personachat/plans"
	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List purchasable plans
// @Tags plans
// @Produce json
// @Success 200 {array} plans.Plan
// @Router /api/v1/plans [get]
func List(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := planRepo.ListActive(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "error.list_plans_failed", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// ListAll godoc
// @Summary List all plans including retired ones (admin)
// @Tags plans
// @Produce json
// @Success 200 {array} plans.Plan
// @Router /api/v1/admin/plans [get]
// @Security BearerAuth
func ListAll(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := planRepo.ListAll(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "error.list_plans_failed", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// Create godoc
// @Summary Create a plan (admin)
// @Tags plans
// @Accept json
// @Produce json
// @Param request body plans.SavePlanRequest true "Plan data"
// @Success 201 {object} plans.Plan
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/admin/plans [post]
// @Security BearerAuth
func Create(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req plans.SavePlanRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		plan, err := planRepo.Create(c.Request.Context(), req)
		if err != nil {
			apierrors.InternalError(c, "error.create_plan_failed", err)
			return
		}

		c.JSON(http.StatusCreated, plan)
	}
}

// Update godoc
// @Summary Update a plan (admin)
// @Description Changes apply to future purchases only; active
// subscriptions keep the terms they were bought under.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body plans.SavePlanRequest true "Plan data"
// @Success 200 {object} plans.Plan
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/plans/{id} [put]
// @Security BearerAuth
func Update(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req plans.SavePlanRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		plan, err := planRepo.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				apierrors.NotFound(c, "plan")
				return
			}
			apierrors.InternalError(c, "error.update_plan_failed", err)
			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

// Delete godoc
// @Summary Delete a plan (admin)
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/admin/plans/{id} [delete]
// @Security BearerAuth
func Delete(planRepo *plans.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := planRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				apierrors.NotFound(c, "plan")
				return
			}
			apierrors.InternalError(c, "error.delete_plan_failed", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
