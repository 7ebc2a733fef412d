// FILE: internal/controller/cover_letter_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/pkg/serverutils"
	"resumeforge-be/internal/service"
)

type ICoverLetterController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

type coverLetterController struct {
	service service.ICoverLetterService
}

func NewCoverLetterController(service service.ICoverLetterService) ICoverLetterController {
	return &coverLetterController{service: service}
}

func (c *coverLetterController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/cover-letters", jwtMiddleware)
	h.Post("/", c.Generate)
	h.Get("/", c.List)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

// Generate drafts a cover letter for a job posting, optionally grounded on
// one of the user's resumes. Costs credits.
// @Summary Generate a cover letter
// @Tags CoverLetters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateCoverLetterRequest true "Job details"
// @Success 201 {object} serverutils.Response[dto.GenerateCoverLetterResponse]
// @Failure 402 {object} serverutils.ErrorBody
// @Router /cover-letters [post]
func (c *coverLetterController) Generate(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateCoverLetterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Cover letter generated", res))
}

func (c *coverLetterController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cover letters retrieved", res))
}

func (c *coverLetterController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid cover letter ID"))
	}

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cover letter retrieved", res))
}

func (c *coverLetterController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid cover letter ID"))
	}

	var req dto.UpdateCoverLetterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Cover letter updated", nil))
}

func (c *coverLetterController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid cover letter ID"))
	}

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Cover letter deleted", nil))
}
