// FILE: internal/controller/ai_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/pkg/serverutils"
	"resumeforge-be/internal/service"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type aiController struct {
	service service.IAiService
}

func NewAiController(service service.IAiService) IAiController {
	return &aiController{service: service}
}

func (c *aiController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/ai", jwtMiddleware)
	h.Post("/rewrite", c.Rewrite)
	h.Post("/bullets", c.OptimizeBullets)
	h.Post("/regenerate", c.RegenerateCv)
	h.Post("/job-match", c.JobMatch)
}

// Rewrite rephrases a block of resume text. Costs credits.
// @Summary AI rewrite
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RewriteRequest true "Text to rewrite"
// @Success 200 {object} serverutils.Response[dto.RewriteResponse]
// @Failure 402 {object} serverutils.ErrorBody
// @Router /ai/rewrite [post]
func (c *aiController) Rewrite(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.RewriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Rewrite(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Text rewritten", res))
}

func (c *aiController) OptimizeBullets(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.BulletOptimizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.OptimizeBullets(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bullets optimized", res))
}

func (c *aiController) RegenerateCv(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CvRegenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RegenerateCv(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Resume regenerated", res))
}

// JobMatch scores a resume against a job description using the stored
// embeddings. Costs credits.
func (c *aiController) JobMatch(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.JobMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.JobMatch(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Job match scored", res))
}
