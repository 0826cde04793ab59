package http

import (
	"fmt"
	"log"

	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "booking-engine",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				switch fe.Code {
				case fiber.StatusNotFound:
					return helpers.RespError(ctx, otelzap.L(), errors.NotFoundError(fe.Message))
				case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
					return helpers.RespError(ctx, otelzap.L(), errors.BadRequest(fe.Message))
				}
			}
			return helpers.RespError(ctx, otelzap.L(), err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(Tracing())

	return app
}

// Tracing opens an APM transaction per request and exposes it through the user context.
func Tracing() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		name := fmt.Sprintf("%s %s", ctx.Method(), ctx.Route().Path)
		tx := apm.DefaultTracer.StartTransaction(name, "request")
		defer tx.End()

		ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))
		err := ctx.Next()
		if err != nil {
			apm.CaptureError(ctx.UserContext(), err).Send()
		}
		tx.Result = fmt.Sprintf("HTTP %d", ctx.Response().StatusCode())
		return err
	}
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error start http server: %v", err)
	}
}
