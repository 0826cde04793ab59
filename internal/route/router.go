package router

import (
	"booking-engine/internal/module/booking/handler"
	"booking-engine/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1", m.ValidateToken)

	v1.Post("/quotes", handlerBooking.Quote)

	matching := v1.Group("/matching")
	matching.Post("/search", handlerBooking.SearchPhotographers)
	matching.Post("/flash", handlerBooking.FlashSearch)

	photographers := v1.Group("/photographers/:id")
	photographers.Get("/slots", handlerBooking.AvailableSlots)
	photographers.Put("/availability", handlerBooking.UpdateAvailability)
	photographers.Post("/time-offs", handlerBooking.CreateTimeOff)

	bookings := v1.Group("/bookings")
	bookings.Post("/", handlerBooking.CreateBooking)
	bookings.Get("/:id", handlerBooking.ShowBooking)
	bookings.Post("/:id/schedule", handlerBooking.ScheduleDraft)
	bookings.Post("/:id/reschedule", handlerBooking.Reschedule)
	bookings.Put("/:id/services", handlerBooking.EditServices)
	bookings.Post("/:id/confirm", handlerBooking.ConfirmBooking)
	bookings.Post("/:id/complete", handlerBooking.CompleteBooking)
	bookings.Post("/:id/deliver", handlerBooking.DeliverMaterial)
	bookings.Post("/:id/cancel", handlerBooking.CancelBooking)
	bookings.Post("/:id/tip", handlerBooking.AddTip)
	bookings.Post("/:id/key", handlerBooking.UpdateKeyState)
	bookings.Get("/:id/payout", handlerBooking.Payout)

	// staff only
	bookings.Post("/:id/status", m.RequireStaff, handlerBooking.ForceStatus)
	bookings.Post("/:id/payment/recheck", m.RequireStaff, handlerBooking.RequestPaymentRecheck)

	return app

}
