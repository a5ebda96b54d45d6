package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the standard response envelope. Client-visible failures (AppError,
// validation errors) keep their safe message; everything else is logged
// with full detail and collapsed into a generic internal error so no
// stack traces or internal state reach the caller.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *dto.AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Status, appErr.Message))
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, "invalid request data"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			// Body parse failures and 404s land here.
			if fiberErr.Code < fiber.StatusInternalServerError {
				return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
			}
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
