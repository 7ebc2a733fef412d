// FILE: internal/controller/plan_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"resumeforge-be/internal/pkg/serverutils"
	"resumeforge-be/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	service service.PlanService
}

func NewPlanController(service service.PlanService) IPlanController {
	return &planController{service: service}
}

func (c *planController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/plans")
	h.Get("/", c.GetPlans)
	h.Get("/packs", c.GetCreditPacks)
	h.Get("/templates", jwtMiddleware, c.GetTemplates)
	h.Get("/usage", jwtMiddleware, c.GetUsageStatus)
}

// GetPlans returns the static plan catalog.
// @Summary List plans
// @Tags Plans
// @Produce json
// @Success 200 {object} serverutils.Response[[]dto.PlanResponse]
// @Router /plans [get]
func (c *planController) GetPlans(ctx *fiber.Ctx) error {
	plans := c.service.GetPlans(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}

// GetCreditPacks returns the purchasable credit packs.
// @Summary List credit packs
// @Tags Plans
// @Produce json
// @Success 200 {object} serverutils.Response[[]dto.CreditPackResponse]
// @Router /plans/packs [get]
func (c *planController) GetCreditPacks(ctx *fiber.Ctx) error {
	packs := c.service.GetCreditPacks(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Credit packs retrieved", packs))
}

func (c *planController) GetTemplates(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	templates, err := c.service.GetTemplates(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Templates retrieved", templates))
}

// GetUsageStatus returns the caller's plan, credits and per-feature limits.
// @Summary Usage status
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} serverutils.Response[dto.UsageStatusResponse]
// @Router /plans/usage [get]
func (c *planController) GetUsageStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	status, err := c.service.GetUserUsageStatus(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage status retrieved", status))
}
