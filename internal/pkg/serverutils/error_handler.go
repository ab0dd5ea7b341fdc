// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"feature-flag-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps typed core errors to HTTP statuses. Anything
// unclassified becomes a 500 without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorBody{Message: fiberErr.Message})
		}

		switch apperrors.KindOf(err) {
		case apperrors.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorBody{Message: err.Error()})
		case apperrors.KindInvalidReference, apperrors.KindInvalidArgument:
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: err.Error()})
		case apperrors.KindConflictOrTransient:
			return ctx.Status(fiber.StatusConflict).JSON(ErrorBody{Message: err.Error()})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Message: "Internal Server Error"})
	}
}
