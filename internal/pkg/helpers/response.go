package helpers

import (
	"fmt"

	"booking-engine/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Meta struct {
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable"`
}

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError maps err to its HTTP status. Anything that is not a CustomError is a 500
// and its text is not leaked to the caller.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce := errors.As(err)
	message := ce.Message
	if ce.Kind == errors.KindInternal {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		message = "internal server error"
	}

	return ctx.Status(ce.Code).JSON(Response{
		Message: message,
		Data:    nil,
		Meta: &Meta{
			Code:      string(ce.Kind),
			Retryable: ce.Retryable(),
		},
	})
}
