package handler

import (
	"fmt"
	"strings"
	"time"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/usecases"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// NewValidator registers the "clock" (HH:MM) and "date" (YYYY-MM-DD) rules.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := engine.ParseClock(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(helpers.DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Actor returns who is calling, as set by the token middleware.
func Actor(ctx *fiber.Ctx) engine.Actor {
	id, _ := ctx.Locals("user_id").(string)
	role, _ := ctx.Locals("role").(string)
	return engine.Actor{ID: id, Role: engine.Role(strings.ToLower(role))}
}

func (h *BookingHandler) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}
	return nil
}

func (h *BookingHandler) Quote(ctx *fiber.Ctx) error {
	var req request.Quote
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Quote(ctx.UserContext(), Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote")
}

func (h *BookingHandler) AvailableSlots(ctx *fiber.Ctx) error {
	duration, err := helpers.ParsePositiveInt(ctx.Query("duration"), "duration")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.AvailableSlots(ctx.UserContext(), ctx.Params("id"), ctx.Query("date"), duration)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error available slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success available slots")
}

func (h *BookingHandler) SearchPhotographers(ctx *fiber.Ctx) error {
	var req request.Search
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SearchPhotographers(ctx.UserContext(), Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error search photographers: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search photographers")
}

func (h *BookingHandler) FlashSearch(ctx *fiber.Ctx) error {
	var req request.Flash
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FlashSearch(ctx.UserContext(), Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error flash search: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if !resp.Found {
		return helpers.RespSuccess(ctx, h.Log, resp, "no photographer available today")
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success flash search")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) ShowBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowBooking(ctx.UserContext(), Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

func (h *BookingHandler) ScheduleDraft(ctx *fiber.Ctx) error {
	var req request.ScheduleDraft
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ScheduleDraft(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error schedule draft: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success schedule draft")
}

func (h *BookingHandler) Reschedule(ctx *fiber.Ctx) error {
	var req request.Reschedule
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Reschedule(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reschedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reschedule")
}

func (h *BookingHandler) EditServices(ctx *fiber.Ctx) error {
	var req request.EditServices
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.EditServices(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error edit services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success edit services")
}

func (h *BookingHandler) ConfirmBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ConfirmBooking(ctx.UserContext(), Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success confirm booking")
}

func (h *BookingHandler) CompleteBooking(ctx *fiber.Ctx) error {
	var req request.Complete
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CompleteBooking(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success complete booking")
}

func (h *BookingHandler) DeliverMaterial(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.DeliverMaterial(ctx.UserContext(), Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error deliver material: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success deliver material")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	var req request.Cancel
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CancelBooking(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	switch {
	case resp.Offer != nil:
		return helpers.RespSuccess(ctx, h.Log, resp, "retention offer, repeat with accept or decline")
	case !resp.Cancelled:
		return helpers.RespSuccess(ctx, h.Log, resp, "booking kept with weather insurance")
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel booking")
}

func (h *BookingHandler) ForceStatus(ctx *fiber.Ctx) error {
	var req request.ForceStatus
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ForceStatus(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error force status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success force status")
}

func (h *BookingHandler) AddTip(ctx *fiber.Ctx) error {
	var req request.Tip
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.AddTip(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error add tip: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success add tip")
}

func (h *BookingHandler) UpdateKeyState(ctx *fiber.Ctx) error {
	var req request.KeyState
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateKeyState(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update key state: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update key state")
}

func (h *BookingHandler) Payout(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Payout(ctx.UserContext(), Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error payout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success payout")
}

func (h *BookingHandler) RequestPaymentRecheck(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.RequestPaymentRecheck(ctx.UserContext(), Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error request payment recheck: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment recheck scheduled")
}

func (h *BookingHandler) UpdateAvailability(ctx *fiber.Ctx) error {
	var req request.DayAvailability
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateAvailability(ctx.UserContext(), Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update availability")
}

func (h *BookingHandler) CreateTimeOff(ctx *fiber.Ctx) error {
	var req request.TimeOff
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}
	// the path names the photographer
	req.PhotographerID = ctx.Params("id")
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateTimeOff(ctx.UserContext(), Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create time off: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create time off")
}
