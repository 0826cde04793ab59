package usecases

import (
	"context"
	"fmt"
	"strings"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

// transition applies a status-only action and publishes it.
func (u *usecase) transition(ctx context.Context, actor engine.Actor, bookingID string, action engine.Action, note string, fn func(ctx context.Context, b *entity.Booking) error) (response.Booking, error) {
	var ev engine.Event
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		var err error
		if ev, err = u.lifecycle.Transition(b, actor, action, note, u.now()); err != nil {
			return err
		}
		if fn != nil {
			return fn(ctx, b)
		}
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}
	u.emit(ctx, ev)
	return response.NewBooking(b), nil
}

func (u *usecase) ConfirmBooking(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error) {
	return u.transition(ctx, actor, bookingID, engine.ActionConfirm, "confirmed", u.redeemOnConfirm)
}

func (u *usecase) CompleteBooking(ctx context.Context, actor engine.Actor, bookingID string, req *request.Complete) (response.Booking, error) {
	return u.transition(ctx, actor, bookingID, engine.ActionComplete, "session done", func(ctx context.Context, b *entity.Booking) error {
		if notes := strings.TrimSpace(req.InternalNotes); notes != "" {
			if b.InternalNotes != "" {
				b.InternalNotes += "\n"
			}
			b.InternalNotes += notes
		}
		if req.CommonAreaID != "" {
			b.CommonAreaID = validString(req.CommonAreaID)
		}
		return nil
	})
}

func (u *usecase) DeliverMaterial(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error) {
	return u.transition(ctx, actor, bookingID, engine.ActionDeliver, "material delivered", nil)
}

func (u *usecase) CancelBooking(ctx context.Context, actor engine.Actor, bookingID string, req *request.Cancel) (response.Cancellation, error) {
	now := u.now()
	reason := entity.CancelReason{Code: strings.TrimSpace(req.ReasonCode), Detail: req.ReasonDetail}

	current, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Cancellation{}, err
	}
	if err := u.lifecycle.Authorize(actor, current, engine.ActionCancel, now); err != nil {
		return response.Cancellation{}, err
	}
	if _, err := u.lifecycle.Next(engine.ActionCancel, current.Status); err != nil {
		return response.Cancellation{}, err
	}

	catalog, err := u.loadCatalog(ctx, current.CouponCode.String, "")
	if err != nil {
		return response.Cancellation{}, err
	}

	offer := u.retention(catalog).BeforeCancel(current, reason)
	if offer != nil && req.Retention == "" {
		return response.Cancellation{Offer: &response.RetentionOffer{
			ServiceID:     offer.ServiceID,
			OriginalPrice: offer.OriginalPrice,
			Price:         offer.Price,
			Message:       offer.Message,
		}}, nil
	}

	unlock, err := u.repo.Lock(ctx, bookingLocks(current)...)
	if err != nil {
		return response.Cancellation{}, err
	}
	defer unlock()

	if offer != nil && req.Retention == request.RetentionAccept {
		var ev engine.Event
		b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
			requested := append(append([]string{}, b.ServiceIDs...), offer.ServiceID)
			var err error
			ev, err = u.changeServices(ctx, actor, b, catalog, requested,
				map[string]decimal.Decimal{offer.ServiceID: offer.Price},
				fmt.Sprintf("kept after %s cancellation request, weather insurance added", reason.Code))
			return err
		})
		if err != nil {
			return response.Cancellation{}, err
		}
		u.invalidate(ctx, b.PhotographerID.String)
		u.emit(ctx, ev)
		out := response.NewBooking(b)
		return response.Cancellation{Booking: &out}, nil
	}

	var (
		ev     engine.Event
		charge string
	)
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		pending := b.Status == entity.StatusPending
		note := "cancelled: " + reason.Code
		if reason.Detail != "" {
			note += " (" + reason.Detail + ")"
		}
		var err error
		if ev, err = u.lifecycle.Transition(b, actor, engine.ActionCancel, note, now); err != nil {
			return err
		}
		b.CancelReason = reason

		if b.WalletDebited.IsPositive() {
			client, err := u.repo.FindClientForUpdate(ctx, b.ClientID)
			if err != nil {
				return err
			}
			refund := b.WalletDebited
			if err := u.postWallet(ctx, &client, b.ID, entity.WalletRefund, refund, client.Balance.Add(refund), "cancel:"+b.ID, now); err != nil {
				return err
			}
			b.WalletDebited = decimal.Zero
		}
		if pending && b.ChargeID.Valid {
			charge = b.ChargeID.String
		}
		return nil
	})
	if err != nil {
		return response.Cancellation{}, err
	}

	u.cancelCharge(ctx, charge)
	u.invalidate(ctx, b.PhotographerID.String)
	u.emit(ctx, ev)
	out := response.NewBooking(b)
	return response.Cancellation{Cancelled: true, Booking: &out}, nil
}

func (u *usecase) ForceStatus(ctx context.Context, actor engine.Actor, bookingID string, req *request.ForceStatus) (response.Booking, error) {
	to := entity.Status(req.Status)
	if !engine.ValidStatus(to) {
		return response.Booking{}, errors.ValidationError(fmt.Sprintf("unknown status %q", req.Status))
	}

	var ev engine.Event
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		var err error
		if ev, err = u.lifecycle.ForceStatus(b, actor, to, u.now()); err != nil {
			return err
		}
		if req.Note != "" {
			b.AppendHistory(u.now(), actor.String(), req.Note)
		}
		return u.redeemOnConfirm(ctx, b)
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.invalidate(ctx, b.PhotographerID.String)
	u.emit(ctx, ev)
	return response.NewBooking(b), nil
}

func (u *usecase) AddTip(ctx context.Context, actor engine.Actor, bookingID string, req *request.Tip) (response.Booking, error) {
	if !req.Amount.IsPositive() {
		return response.Booking{}, errors.ValidationError("tip amount must be positive")
	}

	current, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	unlock, err := u.repo.Lock(ctx, bookingLocks(current)...)
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	now := u.now()
	var ev engine.Event
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		var err error
		if ev, err = u.lifecycle.Transition(b, actor, engine.ActionTip, "tip of "+req.Amount.StringFixed(2), now); err != nil {
			return err
		}

		client, err := u.repo.FindClientForUpdate(ctx, b.ClientID)
		if err != nil {
			return err
		}
		if client.IsPrePaid() {
			balance, err := u.ledger.ApplyDelta(client.Balance, req.Amount)
			if err != nil {
				return err
			}
			if err := u.postWallet(ctx, &client, b.ID, entity.WalletTip, req.Amount, balance, "tip:"+b.ID, now); err != nil {
				return err
			}
		}
		b.TipAmount = b.TipAmount.Add(req.Amount)
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.emit(ctx, ev)
	return response.NewBooking(b), nil
}

var keyOrder = map[entity.KeyState]int{
	entity.KeyNone:           0,
	entity.KeyAwaitingPickup: 1,
	entity.KeyPickedUp:       2,
	entity.KeyReturned:       3,
}

func (u *usecase) UpdateKeyState(ctx context.Context, actor engine.Actor, bookingID string, req *request.KeyState) (response.Booking, error) {
	to := entity.KeyState(req.State)
	if _, ok := keyOrder[to]; !ok || to == entity.KeyNone {
		return response.Booking{}, errors.ValidationError(fmt.Sprintf("unknown key state %q", req.State))
	}

	catalog, err := u.loadCatalog(ctx, "", "")
	if err != nil {
		return response.Booking{}, err
	}

	return u.transition(ctx, actor, bookingID, engine.ActionKeyState, "key "+string(to), func(ctx context.Context, b *entity.Booking) error {
		if !catalog.HasKind(b.ServiceIDs, entity.ServiceKeyPickup) {
			return errors.ConflictError("booking has no key pickup")
		}
		if keyOrder[to] <= keyOrder[b.KeyState] {
			return errors.ConflictError(fmt.Sprintf("key is already %s", b.KeyState))
		}
		b.KeyState = to
		return nil
	})
}

func (u *usecase) Payout(ctx context.Context, actor engine.Actor, bookingID string) (response.Payout, error) {
	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Payout{}, err
	}
	if !b.PhotographerID.Valid {
		return response.Payout{}, errors.ConflictError("booking has no photographer assigned")
	}
	if !actor.IsStaff() && !(actor.Role == engine.RolePhotographer && actor.ID == b.PhotographerID.String) {
		return response.Payout{}, errors.AuthorizationError("payout is visible to staff and the assigned photographer")
	}

	p, err := u.repo.FindPhotographerByID(ctx, b.PhotographerID.String)
	if err != nil {
		return response.Payout{}, err
	}
	catalog, err := u.loadCatalog(ctx, "", "")
	if err != nil {
		return response.Payout{}, err
	}

	amount, err := engine.NewPricing(catalog).Payout(b, &p, u.settings.PhotographerShareRatio)
	if err != nil {
		return response.Payout{}, err
	}
	return response.Payout{
		BookingID:      b.ID,
		PhotographerID: p.ID,
		Amount:         amount,
		ShareRatio:     u.settings.PhotographerShareRatio,
	}, nil
}
