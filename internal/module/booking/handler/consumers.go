package handler

import (
	"context"
	"fmt"

	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/usecases"
	"booking-engine/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

// ConsumeCreditPosted handles payment_credit_posted. Payloads that can never succeed go
// straight to the poisoned topic; other failures are returned so the router retries them.
func (h *BookingHandler) ConsumeCreditPosted(msg *message.Message) error {
	ctx := msg.Context()

	var req request.CreditPosted
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.poison(ctx, msg, err)
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate message: %v", err))
		return h.poison(ctx, msg, err)
	}

	err := h.Usecase.ConsumeCreditPosted(ctx, &req)
	if errors.IsValidation(err) || errors.IsNotFound(err) {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error consume credit posted: %v", err))
		return h.poison(ctx, msg, err)
	}
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error consume credit posted: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) poison(ctx context.Context, msg *message.Message, cause error) error {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicCreditPosted,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(usecases.TopicCreditPostedPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		return err
	}
	return nil
}

// RecheckPayment is the asynq handler of recheck_payment.
func (h *BookingHandler) RecheckPayment(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentRecheck
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.RecheckPayment(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error recheck payment: %v", err))
		return err
	}

	return nil
}
