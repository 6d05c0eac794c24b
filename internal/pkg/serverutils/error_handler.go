package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	BodyTooLargeMessage = "Body too large"
	NotFoundMessage     = "Not found"
	ForbiddenMessage    = "Forbidden"
)

// ErrorHandler is the fiber ErrorHandler. API failures are written as
// {"error": ...}; static misses keep the plain-text bodies.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	var persistenceErr *PersistenceError
	var throttledErr *ThrottledError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
	case errors.As(err, &persistenceErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(PersistenceFailureMessage))
	case errors.As(err, &throttledErr):
		return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(throttledErr.Message))
	case errors.As(err, &fiberErr):
		switch fiberErr.Code {
		case fiber.StatusRequestEntityTooLarge:
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(BodyTooLargeMessage))
		case fiber.StatusNotFound:
			return ctx.Status(fiberErr.Code).SendString(NotFoundMessage)
		case fiber.StatusForbidden:
			return ctx.Status(fiberErr.Code).SendString(ForbiddenMessage)
		}
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
}
