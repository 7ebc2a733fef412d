package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeforge-be/internal/dto"
)

// ErrorHandlerMiddleware catches errors returned by downstream handlers and
// maps them through ErrorHandler.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return ErrorHandler(ctx, err)
		}
		return nil
	}
}

// ErrorHandler maps service errors to HTTP responses. Credit exhaustion is a
// payment-required paywall, disabled features are a plain forbidden.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var insufficientErr *dto.InsufficientCreditsError
	if errors.As(err, &insufficientErr) {
		return ctx.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusPaymentRequired,
			"message": insufficientErr.Error(),
			"paywall": fiber.Map{
				"action": insufficientErr.Action,
				"need":   insufficientErr.Need,
				"have":   insufficientErr.Have,
			},
		})
	}

	var notIncludedErr *dto.FeatureNotIncludedError
	if errors.As(err, &notIncludedErr) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusForbidden,
			"message": notIncludedErr.Error(),
			"upgrade": fiber.Map{
				"action":  notIncludedErr.Action,
				"plan_id": notIncludedErr.PlanId,
			},
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
}
