package serverutils

import (
	"errors"

	"vehicle-diagnosis-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors into the JSON error envelope
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, body := mapError(err)
		return ctx.Status(code).JSON(body)
	}
}

func mapError(err error) (int, *ErrorBody) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		body := ErrorResponse(fiber.StatusBadRequest, "Validation failed")
		body.Errors = verr.Fields
		return fiber.StatusBadRequest, body
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, ErrorResponse(ferr.Code, ferr.Message)
	}

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound, ErrorResponse(fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrBadRequest):
		return fiber.StatusBadRequest, ErrorResponse(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrUnavailable):
		return fiber.StatusServiceUnavailable, ErrorResponse(fiber.StatusServiceUnavailable, err.Error())
	}

	return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, "Internal server error")
}
