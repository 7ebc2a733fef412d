// FILE: internal/controller/credit_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/pkg/serverutils"
	"resumeforge-be/internal/service"
	"resumeforge-be/pkg/pricing"
)

type ICreditController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type creditController struct {
	service service.EntitlementService
}

func NewCreditController(service service.EntitlementService) ICreditController {
	return &creditController{service: service}
}

func (c *creditController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/credits", jwtMiddleware)
	h.Post("/check", c.CheckFeature)
	h.Post("/deduct", c.DeductCredit)
	h.Get("/history", c.GetHistory)
	h.Get("/subscription", c.GetSubscription)
}

// CheckFeature answers whether the caller may perform an action without
// mutating anything.
// @Summary Check feature availability
// @Tags Credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeatureCheckRequest true "Action to check"
// @Success 200 {object} serverutils.Response[dto.FeatureCheckResponse]
// @Router /credits/check [post]
func (c *creditController) CheckFeature(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.FeatureCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	action := pricing.FeatureAction(req.Action)
	if !pricing.ValidAction(action) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Unknown action: "+req.Action))
	}

	res, err := c.service.CheckFeature(ctx.Context(), userId, action)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature check completed", res))
}

// DeductCredit records a feature use and deducts its cost. A denial is a
// successful response with success=false, not an error.
// @Summary Deduct credits for a feature use
// @Tags Credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeductCreditRequest true "Action performed"
// @Success 200 {object} serverutils.Response[dto.DeductCreditResponse]
// @Router /credits/deduct [post]
func (c *creditController) DeductCredit(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.DeductCreditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	action := pricing.FeatureAction(req.Action)
	if !pricing.ValidAction(action) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Unknown action: "+req.Action))
	}

	res, err := c.service.DeductCredit(ctx.Context(), userId, action)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Deduction processed", res))
}

func (c *creditController) GetHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetCreditHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Credit history retrieved", res))
}

func (c *creditController) GetSubscription(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	sub, err := c.service.GetSubscription(ctx.Context(), userId)
	if err != nil {
		return err
	}

	start := sub.SubscriptionStart
	res := dto.SubscriptionDTO{
		PlanId:            string(sub.PlanId),
		Credits:           sub.Credits,
		BillingCycle:      string(sub.BillingCycle),
		SubscriptionStart: &start,
		SubscriptionEnd:   sub.SubscriptionEnd,
		IsActive:          sub.IsActive,
		Status:            string(sub.Status),
		Version:           sub.Version,
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription retrieved", res))
}
