package usecases

import (
	"context"
	"fmt"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/lock"

	"go.uber.org/zap"
)

func creditReference(req *request.CreditPosted) string {
	if req.ChargeID != "" {
		return "charge:" + req.ChargeID
	}
	return "event:" + req.EventID
}

// ConsumeCreditPosted credits the wallet once per charge, then confirms the client's pay-now
// bookings in creation order while the balance covers them.
func (u *usecase) ConsumeCreditPosted(ctx context.Context, req *request.CreditPosted) error {
	if !req.Amount.IsPositive() {
		return errors.ValidationError("credit amount must be positive")
	}
	reference := creditReference(req)
	now := u.now()

	unlock, err := u.repo.Lock(ctx, lock.WalletKey(req.ClientID))
	if err != nil {
		return err
	}
	defer unlock()

	var (
		events        []engine.Event
		photographers []string
		duplicate     bool
	)
	err = u.repo.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := u.repo.CreditReferenceExists(ctx, reference)
		if err != nil {
			return err
		}
		if exists {
			duplicate = true
			return nil
		}

		client, err := u.repo.FindClientForUpdate(ctx, req.ClientID)
		if err != nil {
			return err
		}
		balance, err := u.ledger.Credit(client.Balance, req.Amount)
		if err != nil {
			return err
		}
		if err := u.postWallet(ctx, &client, "", entity.WalletCredit, req.Amount, balance, reference, now); err != nil {
			return err
		}
		if !client.IsPrePaid() {
			return nil
		}

		pending, err := u.repo.FindPendingPayNowBookings(ctx, client.ID)
		if err != nil {
			return err
		}
		for i := range pending {
			b := &pending[i]
			if b.CouponCode.Valid && !b.CouponRedeemed {
				if err := u.couponRedeemable(ctx, b); err != nil {
					if !errors.IsConflict(err) && !errors.IsNotFound(err) {
						return err
					}
					dropCoupon(b, paymentActor.String(), now)
				}
			}
			if client.Balance.LessThan(b.TotalPrice) {
				break
			}
			ev, err := u.lifecycle.Transition(b, paymentActor, engine.ActionPaymentConfirmed, "payment received", now)
			if err != nil {
				return err
			}
			if b.TotalPrice.IsPositive() {
				if err := u.postWallet(ctx, &client, b.ID, entity.WalletDebit, b.TotalPrice, client.Balance.Sub(b.TotalPrice), "booking:"+b.ID, now); err != nil {
					return err
				}
				b.WalletDebited = b.WalletDebited.Add(b.TotalPrice)
			}
			if err := u.redeemOnConfirm(ctx, b); err != nil {
				return err
			}
			b.UpdatedAt.Time, b.UpdatedAt.Valid = now, true
			if err := u.repo.UpdateBooking(ctx, *b); err != nil {
				return err
			}
			events = append(events, ev)
			photographers = append(photographers, b.PhotographerID.String)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if duplicate {
		u.log.Info(ctx, "credit already applied", zap.String("reference", reference), zap.String("client_id", req.ClientID))
		return nil
	}
	u.log.Info(ctx, "credit applied",
		zap.String("reference", reference),
		zap.String("client_id", req.ClientID),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.Int("confirmed", len(events)))
	u.invalidate(ctx, photographers...)
	u.emit(ctx, events...)
	return nil
}

func (u *usecase) RequestPaymentRecheck(ctx context.Context, actor engine.Actor, bookingID string) (response.PaymentRecheck, error) {
	if !actor.IsStaff() {
		return response.PaymentRecheck{}, errors.AuthorizationError("only staff may recheck payments")
	}
	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.PaymentRecheck{}, err
	}
	if b.Status != entity.StatusPending || !b.ChargeID.Valid {
		return response.PaymentRecheck{}, errors.ConflictError("booking is not awaiting a payment")
	}

	taskID, err := u.repo.EnqueuePaymentRecheck(ctx, request.PaymentRecheck{
		BookingID: b.ID,
		ChargeID:  b.ChargeID.String,
		ClientID:  b.ClientID,
	})
	if err != nil {
		return response.PaymentRecheck{}, err
	}
	return response.PaymentRecheck{BookingID: b.ID, TaskID: taskID}, nil
}

// RecheckPayment looks the charge up at the provider and feeds a paid one into the credit flow.
// An unpaid charge returns a ConflictError so the task is retried later.
func (u *usecase) RecheckPayment(ctx context.Context, req *request.PaymentRecheck) error {
	charge, err := u.repo.GetCharge(ctx, req.ChargeID)
	if err != nil {
		return err
	}
	if !charge.IsPaid() {
		return errors.ConflictError(fmt.Sprintf("charge %s is %s", req.ChargeID, charge.Status))
	}
	return u.ConsumeCreditPosted(ctx, &request.CreditPosted{
		EventID:  "recheck:" + req.ChargeID,
		ClientID: req.ClientID,
		ChargeID: req.ChargeID,
		Amount:   charge.Amount,
	})
}
