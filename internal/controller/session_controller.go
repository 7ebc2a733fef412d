// FILE: internal/controller/session_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/pkg/serverutils"
	"resumeforge-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/session", jwtMiddleware)
	h.Get("/view-state", c.GetViewState)
	h.Put("/view-state", c.SaveViewState)
	h.Delete("/view-state", c.ClearViewState)
}

// GetViewState restores the last UI snapshot, falling back to the dashboard
// default when none is stored or the stored schema is stale.
func (c *sessionController) GetViewState(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetViewState(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("View state retrieved", res))
}

func (c *sessionController) SaveViewState(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveViewStateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveViewState(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("View state saved", res))
}

func (c *sessionController) ClearViewState(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	c.service.ClearViewState(ctx.Context(), userId)
	return ctx.JSON(serverutils.SuccessResponse[any]("View state cleared", nil))
}
