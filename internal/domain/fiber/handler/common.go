package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/usecase"
	"github.com/hiresage/recruitai/internal/util"
)

// parseIDParam parses a uuid route parameter. The returned *fiber.Error is
// rendered by the app-level error handler.
func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// jobError maps usecase errors to HTTP status codes. Unknown errors become 500.
func jobError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Job not found",
		}, err)
	case errors.Is(err, usecase.ErrForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "You do not own this job",
		}, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "Job is not in a valid status for this operation",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Internal server error",
		}, err)
	}
}
