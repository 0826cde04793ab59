package usecases

import (
	"context"
	"fmt"
	"time"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/helpers"
	"booking-engine/internal/pkg/lock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type slotRequest struct {
	photographerID string
	date           string
	startTime      string
	bypassRadius   bool
}

// parseSlot resolves a requested date and start time, rejecting slots already in the past.
func (u *usecase) parseSlot(date, startTime string) (time.Time, int, error) {
	day, err := helpers.ParseDate(date, u.settings.Location)
	if err != nil {
		return time.Time{}, 0, err
	}
	start, err := engine.ParseClock(startTime)
	if err != nil {
		return time.Time{}, 0, err
	}
	if !u.calendar.At(day, start).After(u.now()) {
		return time.Time{}, 0, errors.ValidationError("cannot schedule a session in the past")
	}
	return day, start, nil
}

func keyStateFor(catalog engine.Catalog, ids []string, current entity.KeyState) entity.KeyState {
	if !catalog.HasKind(ids, entity.ServiceKeyPickup) {
		return entity.KeyNone
	}
	if current == "" || current == entity.KeyNone {
		return entity.KeyAwaitingPickup
	}
	return current
}

func (u *usecase) CreateBooking(ctx context.Context, actor engine.Actor, req *request.CreateBooking) (response.Booking, error) {
	now := u.now()

	clientID, err := clientFor(actor, req.ClientID, true)
	if err != nil {
		return response.Booking{}, err
	}
	brokerID := req.BrokerID
	if actor.Role == engine.RoleBroker {
		brokerID = actor.ID
	}

	draft := req.Date == "" && req.StartTime == ""
	if !draft && (req.Date == "" || req.StartTime == "") {
		return response.Booking{}, errors.ValidationError("date and start_time must be given together")
	}
	if !draft && req.PhotographerID == "" {
		return response.Booking{}, errors.ValidationError("photographer_id is required to schedule a booking")
	}
	if draft && !actor.IsStaff() {
		return response.Booking{}, errors.AuthorizationError("only staff may create draft bookings")
	}
	if req.BypassRadius && !actor.IsStaff() {
		return response.Booking{}, errors.AuthorizationError("only staff may schedule outside coverage")
	}
	if req.Flash {
		if draft {
			return response.Booking{}, errors.ValidationError("a flash booking needs its slot")
		}
		if req.BypassRadius {
			return response.Booking{}, errors.ValidationError("a flash booking stays within coverage")
		}
		if req.Date != u.today().Format(helpers.DateLayout) {
			return response.Booking{}, errors.ValidationError("a flash booking is for today")
		}
	}
	if len(req.PriceOverrides) > 0 && !actor.IsStaff() {
		return response.Booking{}, errors.AuthorizationError("only staff may override prices")
	}
	for id, v := range req.PriceOverrides {
		if v.IsNegative() {
			return response.Booking{}, errors.ValidationError(fmt.Sprintf("price override for %q cannot be negative", id))
		}
	}

	catalog, err := u.loadCatalog(ctx, req.CouponCode, clientID)
	if err != nil {
		return response.Booking{}, err
	}
	client, err := u.repo.FindClientByID(ctx, clientID)
	if err != nil {
		return response.Booking{}, err
	}
	// a flash booking carries the rush fee the search quoted
	var granted entity.StringSet
	if rush, ok := catalog.FirstOfKind(entity.ServiceRushFee); ok && req.Flash {
		granted = entity.NewStringSet(rush.ID)
	}
	ids, err := u.selectServices(catalog, actor, req.ServiceIDs, req.Location.City, granted)
	if err != nil {
		return response.Booking{}, err
	}

	b := entity.Booking{
		ID:             uuid.NewString(),
		ClientID:       client.ID,
		BrokerID:       validString(brokerID),
		PhotographerID: validString(req.PhotographerID),
		ServiceIDs:     ids,
		Address:        req.Location.Address,
		City:           req.Location.City,
		Lat:            req.Location.Lat,
		Lng:            req.Location.Lng,
		Status:         entity.StatusDraft,
		CouponCode:     validString(engine.NormalizeCouponCode(req.CouponCode)),
		TipAmount:      decimal.Zero,
		WalletDebited:  decimal.Zero,
		PriceOverrides: entity.PriceTable(req.PriceOverrides),
		PaymentChoice:  entity.PaymentChoice(req.PaymentChoice),
		KeyState:       keyStateFor(catalog, ids, entity.KeyNone),
		CreatedAt:      now,
	}
	if err := u.lifecycle.Authorize(actor, b, engine.ActionCreate, now); err != nil {
		return response.Booking{}, err
	}
	if err := u.price(catalog, &b, &client, now); err != nil {
		return response.Booking{}, err
	}

	if draft {
		b.AppendHistory(now, actor.String(), "draft created")
		if err := u.repo.InsertBooking(ctx, b); err != nil {
			return response.Booking{}, err
		}
		u.emit(ctx, engine.Event{BookingID: b.ID, Action: engine.ActionCreate, To: b.Status, Actor: actor.String(), At: now})
		return response.NewBooking(b), nil
	}

	return u.place(ctx, actor, b, client, catalog, slotRequest{
		photographerID: req.PhotographerID,
		date:           req.Date,
		startTime:      req.StartTime,
		bypassRadius:   req.BypassRadius,
	}, engine.ActionCreate)
}

func (u *usecase) ScheduleDraft(ctx context.Context, actor engine.Actor, bookingID string, req *request.ScheduleDraft) (response.Booking, error) {
	now := u.now()
	if req.BypassRadius && !actor.IsStaff() {
		return response.Booking{}, errors.AuthorizationError("only staff may schedule outside coverage")
	}

	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if err := u.lifecycle.Authorize(actor, b, engine.ActionScheduleDraft, now); err != nil {
		return response.Booking{}, err
	}
	if _, err := u.lifecycle.Next(engine.ActionScheduleDraft, b.Status); err != nil {
		return response.Booking{}, err
	}

	catalog, err := u.loadCatalog(ctx, b.CouponCode.String, b.ClientID)
	if err != nil {
		return response.Booking{}, err
	}
	client, err := u.repo.FindClientByID(ctx, b.ClientID)
	if err != nil {
		return response.Booking{}, err
	}

	// prices and coupon are taken as of scheduling, not as of the invite
	b.PaymentChoice = entity.PaymentChoice(req.PaymentChoice)
	if err := u.price(catalog, &b, &client, now); err != nil {
		return response.Booking{}, err
	}

	return u.place(ctx, actor, b, client, catalog, slotRequest{
		photographerID: req.PhotographerID,
		date:           req.Date,
		startTime:      req.StartTime,
		bypassRadius:   req.BypassRadius,
	}, engine.ActionScheduleDraft)
}

// place assigns b to a photographer slot and settles its payment, re-checking the slot
// under the slot and wallet locks inside one transaction.
func (u *usecase) place(ctx context.Context, actor engine.Actor, b entity.Booking, client entity.Client, catalog engine.Catalog, slot slotRequest, action engine.Action) (response.Booking, error) {
	now := u.now()

	day, start, err := u.parseSlot(slot.date, slot.startTime)
	if err != nil {
		return response.Booking{}, err
	}
	duration, err := catalog.Duration(b.ServiceIDs)
	if err != nil {
		return response.Booking{}, err
	}
	if duration <= 0 {
		return response.Booking{}, errors.ValidationError("selected services have no duration")
	}
	end, err := engine.EndClock(engine.FormatClock(start), duration)
	if err != nil {
		return response.Booking{}, err
	}

	p, err := u.repo.FindPhotographerByID(ctx, slot.photographerID)
	if err != nil {
		return response.Booking{}, err
	}
	matcher := engine.NewMatcher(u.calendar, catalog)
	location := matcher.RouteLocation(b.Location(), &client, b.ServiceIDs)
	if _, ok := matcher.Eligible(p, location, b.ServiceIDs, &client, slot.bypassRadius); !ok {
		return response.Booking{}, errors.ConflictError(fmt.Sprintf("photographer %s cannot take this booking", p.ID))
	}

	unlock, err := u.repo.Lock(ctx, lock.SlotKey(p.ID, day), lock.WalletKey(client.ID))
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	var (
		ev     engine.Event
		charge *response.Charge
	)
	err = u.repo.WithTransaction(ctx, func(ctx context.Context) error {
		if action == engine.ActionScheduleDraft {
			stored, err := u.repo.FindBookingForUpdate(ctx, b.ID)
			if err != nil {
				return err
			}
			if stored.Status != entity.StatusDraft {
				return errors.ConflictError(fmt.Sprintf("booking is no longer a draft (%s)", stored.Status))
			}
		}

		agenda, err := u.agenda(ctx, p.ID, day)
		if err != nil {
			return err
		}
		if !u.calendar.IsSlotFree(p, agenda, day, engine.FormatClock(start), duration, b.ID) {
			return errors.ConflictError("slot is no longer available")
		}

		fresh, err := u.repo.FindClientForUpdate(ctx, client.ID)
		if err != nil {
			return err
		}

		b.PhotographerID = validString(p.ID)
		b.Date = storeDate(day)
		b.StartTime = validString(engine.FormatClock(start))
		b.EndTime = validString(end)

		ev, charge, err = u.settle(ctx, actor, &b, &fresh, action, now)
		if err != nil {
			return err
		}
		if err := u.redeemOnConfirm(ctx, &b); err != nil {
			return err
		}

		if action == engine.ActionCreate {
			return u.repo.InsertBooking(ctx, b)
		}
		b.UpdatedAt.Time, b.UpdatedAt.Valid = now, true
		return u.repo.UpdateBooking(ctx, b)
	})
	if err != nil {
		if charge != nil {
			u.cancelCharge(ctx, charge.ChargeID)
		}
		return response.Booking{}, err
	}

	u.invalidate(ctx, p.ID)
	u.emit(ctx, ev)

	out := response.NewBooking(b)
	out.Charge = charge
	return out, nil
}

// settle decides the initial status of a booking leaving draft and applies its wallet outcome.
func (u *usecase) settle(ctx context.Context, actor engine.Actor, b *entity.Booking, client *entity.Client, action engine.Action, now time.Time) (engine.Event, *response.Charge, error) {
	ev := engine.Event{BookingID: b.ID, Action: action, Actor: actor.String(), At: now}
	if action != engine.ActionCreate {
		ev.From = b.Status
	}

	var charge *response.Charge
	if !client.IsPrePaid() {
		b.Status = entity.StatusConfirmed
	} else {
		outcome, err := u.ledger.Decide(client.Balance, b.TotalPrice, b.PaymentChoice)
		if err != nil {
			return engine.Event{}, nil, err
		}
		if outcome.Debit.IsPositive() {
			balance := client.Balance.Sub(outcome.Debit)
			if err := u.postWallet(ctx, client, b.ID, entity.WalletDebit, outcome.Debit, balance, "booking:"+b.ID, now); err != nil {
				return engine.Event{}, nil, err
			}
			b.WalletDebited = b.WalletDebited.Add(outcome.Debit)
		}
		if outcome.AwaitsPayment() {
			c, err := u.repo.CreateCharge(ctx, request.Charge{
				CustomerID:  client.PaymentCustomerID,
				Amount:      outcome.Deficit,
				DueDate:     now.Add(time.Duration(u.settings.ChargeDueHours) * time.Hour).Format(helpers.DateLayout),
				Description: fmt.Sprintf("booking %s", b.ID),
				Reference:   b.ID,
			})
			if err != nil {
				return engine.Event{}, nil, err
			}
			charge = &c
			b.ChargeID = validString(c.ChargeID)
		}
		b.Status = outcome.Status
	}

	ev.To = b.Status
	note := fmt.Sprintf("booking created as %s", b.Status)
	if action == engine.ActionScheduleDraft {
		note = fmt.Sprintf("draft scheduled as %s", b.Status)
	}
	b.AppendHistory(now, actor.String(), note)
	return ev, charge, nil
}

func (u *usecase) cancelCharge(ctx context.Context, chargeID string) {
	if chargeID == "" {
		return
	}
	if err := u.repo.CancelCharge(ctx, chargeID); err != nil {
		u.log.Warn(ctx, "charge left open at the provider", zap.String("charge_id", chargeID), zap.Error(err))
	}
}

func (u *usecase) Reschedule(ctx context.Context, actor engine.Actor, bookingID string, req *request.Reschedule) (response.Booking, error) {
	now := u.now()
	if req.BypassRadius && !actor.IsStaff() {
		return response.Booking{}, errors.AuthorizationError("only staff may schedule outside coverage")
	}

	current, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if err := u.lifecycle.Authorize(actor, current, engine.ActionReschedule, now); err != nil {
		return response.Booking{}, err
	}
	if _, err := u.lifecycle.Next(engine.ActionReschedule, current.Status); err != nil {
		return response.Booking{}, err
	}

	photographerID := current.PhotographerID.String
	changed := req.PhotographerID != "" && req.PhotographerID != photographerID
	if changed {
		if !actor.IsStaff() {
			return response.Booking{}, errors.AuthorizationError("only staff may reassign a booking")
		}
		photographerID = req.PhotographerID
	}

	day, start, err := u.parseSlot(req.Date, req.StartTime)
	if err != nil {
		return response.Booking{}, err
	}
	catalog, err := u.loadCatalog(ctx, "", "")
	if err != nil {
		return response.Booking{}, err
	}
	duration, err := catalog.Duration(current.ServiceIDs)
	if err != nil {
		return response.Booking{}, err
	}
	end, err := engine.EndClock(engine.FormatClock(start), duration)
	if err != nil {
		return response.Booking{}, err
	}

	p, err := u.repo.FindPhotographerByID(ctx, photographerID)
	if err != nil {
		return response.Booking{}, err
	}
	if changed {
		client, err := u.repo.FindClientByID(ctx, current.ClientID)
		if err != nil {
			return response.Booking{}, err
		}
		matcher := engine.NewMatcher(u.calendar, catalog)
		location := matcher.RouteLocation(current.Location(), &client, current.ServiceIDs)
		if _, ok := matcher.Eligible(p, location, current.ServiceIDs, &client, req.BypassRadius); !ok {
			return response.Booking{}, errors.ConflictError(fmt.Sprintf("photographer %s cannot take this booking", p.ID))
		}
	}

	keys := []string{lock.SlotKey(p.ID, day)}
	if current.IsScheduled() {
		keys = append(keys, lock.SlotKey(current.PhotographerID.String, current.Date.Time))
	}
	unlock, err := u.repo.Lock(ctx, keys...)
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	var ev engine.Event
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		note := fmt.Sprintf("rescheduled to %s %s", day.Format(helpers.DateLayout), engine.FormatClock(start))
		if changed {
			note += " with photographer " + p.ID
		}
		var err error
		if ev, err = u.lifecycle.Transition(b, actor, engine.ActionReschedule, note, now); err != nil {
			return err
		}

		agenda, err := u.agenda(ctx, p.ID, day)
		if err != nil {
			return err
		}
		if !u.calendar.IsSlotFree(p, agenda, day, engine.FormatClock(start), duration, b.ID) {
			return errors.ConflictError("slot is no longer available")
		}

		b.PhotographerID = validString(p.ID)
		b.Date = storeDate(day)
		b.StartTime = validString(engine.FormatClock(start))
		b.EndTime = validString(end)
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.invalidate(ctx, current.PhotographerID.String, p.ID)
	u.emit(ctx, ev)
	return response.NewBooking(b), nil
}

func (u *usecase) EditServices(ctx context.Context, actor engine.Actor, bookingID string, req *request.EditServices) (response.Booking, error) {
	current, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if err := u.lifecycle.Authorize(actor, current, engine.ActionEditServices, u.now()); err != nil {
		return response.Booking{}, err
	}

	catalog, err := u.loadCatalog(ctx, current.CouponCode.String, "")
	if err != nil {
		return response.Booking{}, err
	}

	unlock, err := u.repo.Lock(ctx, bookingLocks(current)...)
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	var ev engine.Event
	b, err := u.mutateBooking(ctx, bookingID, func(ctx context.Context, b *entity.Booking) error {
		var err error
		ev, err = u.changeServices(ctx, actor, b, catalog, req.ServiceIDs, nil, "services changed")
		return err
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.invalidate(ctx, b.PhotographerID.String)
	u.emit(ctx, ev)
	return response.NewBooking(b), nil
}

// bookingLocks are the slot and wallet keys a mutation of b must hold.
func bookingLocks(b entity.Booking) []string {
	keys := []string{lock.WalletKey(b.ClientID)}
	if b.IsScheduled() {
		keys = append(keys, lock.SlotKey(b.PhotographerID.String, b.Date.Time))
	}
	return keys
}

// changeServices replaces the service set of b, re-checks the occupied interval for the new
// duration and moves the wallet by the price delta of a confirmed pre-paid booking.
func (u *usecase) changeServices(ctx context.Context, actor engine.Actor, b *entity.Booking, catalog engine.Catalog, requested []string, overrides map[string]decimal.Decimal, note string) (engine.Event, error) {
	now := u.now()
	ev, err := u.lifecycle.Transition(b, actor, engine.ActionEditServices, note, now)
	if err != nil {
		return engine.Event{}, err
	}

	// services granted with an override price may be system-managed
	granted := entity.NewStringSet(b.ServiceIDs...)
	for id := range overrides {
		granted = append(granted, id)
	}
	ids, err := u.selectServices(catalog, actor, requested, b.City, granted)
	if err != nil {
		return engine.Event{}, err
	}

	if b.IsScheduled() {
		duration, err := catalog.Duration(ids)
		if err != nil {
			return engine.Event{}, err
		}
		if duration <= 0 {
			return engine.Event{}, errors.ValidationError("selected services have no duration")
		}
		start, err := engine.ParseClock(b.StartTime.String)
		if err != nil {
			return engine.Event{}, err
		}
		end, err := engine.EndClock(b.StartTime.String, duration)
		if err != nil {
			return engine.Event{}, err
		}
		agenda, err := u.agenda(ctx, b.PhotographerID.String, b.Date.Time)
		if err != nil {
			return engine.Event{}, err
		}
		if u.calendar.Conflicts(b.PhotographerID.String, agenda, b.Date.Time, start, start+duration, b.ID) {
			return engine.Event{}, errors.ConflictError("new services do not fit before the next commitment")
		}
		b.EndTime = validString(end)
	}

	client, err := u.repo.FindClientForUpdate(ctx, b.ClientID)
	if err != nil {
		return engine.Event{}, err
	}

	previous := b.TotalPrice
	if len(overrides) > 0 {
		if b.PriceOverrides == nil {
			b.PriceOverrides = entity.PriceTable{}
		}
		for id, v := range overrides {
			b.PriceOverrides[id] = v
		}
	}
	b.ServiceIDs = ids
	b.KeyState = keyStateFor(catalog, ids, b.KeyState)
	if err := u.reprice(catalog, b, &client); err != nil {
		return engine.Event{}, err
	}

	delta := b.TotalPrice.Sub(previous)
	if client.IsPrePaid() && b.Status == entity.StatusConfirmed && !delta.IsZero() {
		balance, err := u.ledger.ApplyDelta(client.Balance, delta)
		if err != nil {
			return engine.Event{}, err
		}
		kind := entity.WalletDebit
		if delta.IsNegative() {
			kind = entity.WalletRefund
		}
		if err := u.postWallet(ctx, &client, b.ID, kind, delta.Abs(), balance, "edit:"+b.ID, now); err != nil {
			return engine.Event{}, err
		}
		b.WalletDebited = b.WalletDebited.Add(delta)
	}
	return ev, nil
}
