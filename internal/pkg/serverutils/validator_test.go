package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Action string `validate:"required"`
}

func TestValidateRequest_Valid(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "user@example.com", Action: "ai_rewrite"})
	assert.NoError(t, err)
}

func TestValidateRequest_MissingFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{})

	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Email")
	assert.Contains(t, fiberErr.Message, "Action")
}

func TestValidateRequest_BadEmail(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email", Action: "x"})

	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Contains(t, fiberErr.Message, "email")
}
