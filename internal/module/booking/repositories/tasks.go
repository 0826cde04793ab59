package repositories

import (
	"context"

	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

// EnqueuePaymentRecheck schedules a provider lookup for a pending charge and returns the task id.
func (r *repositories) EnqueuePaymentRecheck(ctx context.Context, payload request.PaymentRecheck) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.InternalServerError("error encode task payload")
	}

	task := asynq.NewTask(scheduler.TypeRecheckPayment, data)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("default"))
	if err != nil {
		r.log.Error(ctx, "error enqueue payment recheck", err)
		return "", errors.InternalServerError("error enqueue payment recheck")
	}
	return info.ID, nil
}
