package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"booking-engine/config"
	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/module/booking/repositories"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/log"
	"booking-engine/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	TopicBookingTransitions   = "booking_transitions"
	TopicCreditPosted         = "payment_credit_posted"
	TopicCreditPostedPoisoned = "payment_credit_posted_poisoned"
)

// paymentActor drives transitions caused by provider events.
var paymentActor = engine.Actor{ID: "payment", Role: engine.RoleSystem}

type Usecase interface {
	// matching & pricing
	Quote(ctx context.Context, actor engine.Actor, req *request.Quote) (response.Quote, error)
	AvailableSlots(ctx context.Context, photographerID, date string, durationMinutes int) (response.AvailableSlots, error)
	SearchPhotographers(ctx context.Context, actor engine.Actor, req *request.Search) (response.SearchResult, error)
	FlashSearch(ctx context.Context, actor engine.Actor, req *request.Flash) (response.FlashResult, error)
	// booking lifecycle
	CreateBooking(ctx context.Context, actor engine.Actor, req *request.CreateBooking) (response.Booking, error)
	ShowBooking(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error)
	ScheduleDraft(ctx context.Context, actor engine.Actor, bookingID string, req *request.ScheduleDraft) (response.Booking, error)
	Reschedule(ctx context.Context, actor engine.Actor, bookingID string, req *request.Reschedule) (response.Booking, error)
	EditServices(ctx context.Context, actor engine.Actor, bookingID string, req *request.EditServices) (response.Booking, error)
	ConfirmBooking(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error)
	CompleteBooking(ctx context.Context, actor engine.Actor, bookingID string, req *request.Complete) (response.Booking, error)
	DeliverMaterial(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error)
	CancelBooking(ctx context.Context, actor engine.Actor, bookingID string, req *request.Cancel) (response.Cancellation, error)
	ForceStatus(ctx context.Context, actor engine.Actor, bookingID string, req *request.ForceStatus) (response.Booking, error)
	AddTip(ctx context.Context, actor engine.Actor, bookingID string, req *request.Tip) (response.Booking, error)
	UpdateKeyState(ctx context.Context, actor engine.Actor, bookingID string, req *request.KeyState) (response.Booking, error)
	Payout(ctx context.Context, actor engine.Actor, bookingID string) (response.Payout, error)
	// photographers
	UpdateAvailability(ctx context.Context, actor engine.Actor, photographerID string, req *request.DayAvailability) (response.Availability, error)
	CreateTimeOff(ctx context.Context, actor engine.Actor, req *request.TimeOff) (response.TimeOff, error)
	// payments
	ConsumeCreditPosted(ctx context.Context, req *request.CreditPosted) error
	RequestPaymentRecheck(ctx context.Context, actor engine.Actor, bookingID string) (response.PaymentRecheck, error)
	RecheckPayment(ctx context.Context, req *request.PaymentRecheck) error
}

// Settings are the business constants of the engine.
type Settings struct {
	NegativeBalanceLimit     decimal.Decimal
	PhotographerShareRatio   decimal.Decimal
	HomeCity                 string
	Location                 *time.Location
	WeatherInsuranceDiscount decimal.Decimal
	ChargeDueHours           int
}

func SettingsFromConfig(cfg *config.EngineConfig) Settings {
	return Settings{
		NegativeBalanceLimit:     decimal.NewFromFloat(cfg.NegativeBalanceLimit),
		PhotographerShareRatio:   decimal.NewFromFloat(cfg.PhotographerShareRatio),
		HomeCity:                 cfg.HomeCity,
		Location:                 cfg.Location(),
		WeatherInsuranceDiscount: decimal.NewFromFloat(cfg.WeatherInsuranceDiscount),
		ChargeDueHours:           cfg.ChargeDueHours,
	}
}

type Option func(*usecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) { u.now = now }
}

// WithRetention replaces the cancellation hook built for each catalog snapshot.
func WithRetention(hook func(engine.Catalog) engine.CancellationHook) Option {
	return func(u *usecase) { u.retention = hook }
}

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publish   message.Publisher
	settings  Settings
	calendar  engine.Calendar
	lifecycle engine.Lifecycle
	ledger    engine.Ledger
	retention func(engine.Catalog) engine.CancellationHook
	now       func() time.Time
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, settings Settings, opts ...Option) Usecase {
	calendar := engine.NewCalendar(settings.Location)
	u := &usecase{
		repo:      repo,
		log:       log,
		publish:   publish,
		settings:  settings,
		calendar:  calendar,
		lifecycle: engine.NewLifecycle(calendar),
		ledger:    engine.NewLedger(settings.NegativeBalanceLimit),
		now:       time.Now,
	}
	u.retention = func(c engine.Catalog) engine.CancellationHook {
		return engine.NewWeatherRetention(c, settings.WeatherInsuranceDiscount)
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func validString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// storeDate keeps only the calendar day, as the date column does.
func storeDate(d time.Time) sql.NullTime {
	y, m, day := d.Date()
	return sql.NullTime{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// clientFor resolves on whose behalf actor works. Clients always act for themselves.
func clientFor(actor engine.Actor, requested string, required bool) (string, error) {
	if actor.Role == engine.RoleClient {
		if requested != "" && requested != actor.ID {
			return "", errors.AuthorizationError("clients may only act for themselves")
		}
		return actor.ID, nil
	}
	if requested == "" && required {
		return "", errors.ValidationError("client_id is required")
	}
	return requested, nil
}

// loadCatalog snapshots services and, when a code is given, that coupon and the client's prior uses of it.
func (u *usecase) loadCatalog(ctx context.Context, couponCode, clientID string) (engine.Catalog, error) {
	services, err := u.repo.FindServices(ctx)
	if err != nil {
		return engine.Catalog{}, err
	}

	code := engine.NormalizeCouponCode(couponCode)
	if code == "" {
		return engine.NewCatalog(services, nil), nil
	}

	coupon, err := u.repo.FindCouponByCode(ctx, code)
	if errors.IsNotFound(err) {
		return engine.NewCatalog(services, nil), nil
	}
	if err != nil {
		return engine.Catalog{}, err
	}

	catalog := engine.NewCatalog(services, []entity.Coupon{coupon})
	if clientID != "" {
		uses, err := u.repo.CountCouponUses(ctx, code, clientID)
		if err != nil {
			return engine.Catalog{}, err
		}
		catalog = catalog.WithCouponUses(code, clientID, uses)
	}
	return catalog, nil
}

// outsideHomeCity is false for an unknown city.
func (u *usecase) outsideHomeCity(city string) bool {
	return strings.TrimSpace(city) != "" && !strings.EqualFold(strings.TrimSpace(city), strings.TrimSpace(u.settings.HomeCity))
}

// selectServices validates a requested service list and adds the system-managed services the
// booking needs. System-managed services already on existing are kept, the travel surcharge is
// recomputed from city.
func (u *usecase) selectServices(catalog engine.Catalog, actor engine.Actor, requested []string, city string, existing entity.StringSet) (entity.StringSet, error) {
	ids := entity.NewStringSet(requested...)
	for _, id := range ids {
		svc, err := catalog.Service(id)
		if err != nil {
			return nil, err
		}
		if !svc.IsActive && !existing.Contains(id) {
			return nil, errors.ValidationError(fmt.Sprintf("service %q is not available", id))
		}
		if svc.IsSystemManaged && !actor.IsStaff() && !existing.Contains(id) {
			return nil, errors.ValidationError(fmt.Sprintf("service %q cannot be selected", id))
		}
	}

	for _, id := range existing {
		svc, ok := catalog.Services[id]
		if ok && svc.IsSystemManaged && svc.Kind != entity.ServiceTravelSurcharge && !ids.Contains(id) {
			ids = append(ids, id)
		}
	}

	if travel, ok := catalog.FirstOfKind(entity.ServiceTravelSurcharge); ok && u.outsideHomeCity(city) && !ids.Contains(travel.ID) {
		ids = append(ids, travel.ID)
	}
	return ids, nil
}

// price sets TotalPrice and DiscountAmount for a new booking, validating its coupon.
func (u *usecase) price(catalog engine.Catalog, b *entity.Booking, client *entity.Client, now time.Time) error {
	pricing := engine.NewPricing(catalog)
	subtotal, err := pricing.Subtotal(b.ServiceIDs, b, client)
	if err != nil {
		return err
	}

	discount := decimal.Zero
	if b.CouponCode.Valid {
		res, err := pricing.ApplyCoupon(b.CouponCode.String, b.ClientID, subtotal, b.ServiceIDs, now)
		if err != nil {
			return err
		}
		discount = res.Discount
	}
	b.DiscountAmount = discount
	b.TotalPrice = subtotal.Sub(discount)
	return nil
}

// reprice recomputes an existing booking's total. A coupon accepted earlier keeps applying
// without its usage limits being checked again.
func (u *usecase) reprice(catalog engine.Catalog, b *entity.Booking, client *entity.Client) error {
	subtotal, err := engine.NewPricing(catalog).Subtotal(b.ServiceIDs, b, client)
	if err != nil {
		return err
	}

	discount := decimal.Zero
	if b.CouponCode.Valid {
		if coupon, ok := catalog.Coupons[engine.NormalizeCouponCode(b.CouponCode.String)]; ok {
			discount = engine.CouponDiscount(coupon, subtotal)
		} else {
			discount = decimal.Min(b.DiscountAmount, subtotal)
		}
	}
	b.DiscountAmount = discount
	b.TotalPrice = subtotal.Sub(discount)
	return nil
}

// postWallet moves client's balance to balance and writes the ledger row.
func (u *usecase) postWallet(ctx context.Context, client *entity.Client, bookingID string, kind entity.WalletTransactionKind, amount, balance decimal.Decimal, reference string, now time.Time) error {
	if err := u.repo.UpdateClientBalance(ctx, client.ID, balance); err != nil {
		return err
	}
	client.Balance = balance
	return u.repo.InsertWalletTransaction(ctx, entity.WalletTransaction{
		ID:           uuid.NewString(),
		ClientID:     client.ID,
		BookingID:    validString(bookingID),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balance,
		Reference:    reference,
		CreatedAt:    now,
	})
}

// redeemOnConfirm counts the coupon use the first time a booking reaches Confirmado.
// The limits are checked again under the coupon row lock, since other bookings may
// have redeemed it after this one was priced.
func (u *usecase) redeemOnConfirm(ctx context.Context, b *entity.Booking) error {
	if b.Status != entity.StatusConfirmed || b.CouponRedeemed || !b.CouponCode.Valid {
		return nil
	}
	if err := u.couponRedeemable(ctx, b); err != nil {
		return err
	}
	if err := u.repo.RedeemCoupon(ctx, b.CouponCode.String, b.ClientID, b.ID); err != nil {
		return err
	}
	b.CouponRedeemed = true
	return nil
}

// couponRedeemable locks b's coupon and checks its limits against the committed redemptions.
func (u *usecase) couponRedeemable(ctx context.Context, b *entity.Booking) error {
	coupon, err := u.repo.FindCouponForUpdate(ctx, b.CouponCode.String)
	if err != nil {
		return err
	}
	uses, err := u.repo.CountCouponUses(ctx, coupon.Code, b.ClientID)
	if err != nil {
		return err
	}
	return engine.CheckCouponLimits(coupon, uses)
}

// dropCoupon returns b to its undiscounted total.
func dropCoupon(b *entity.Booking, actor string, now time.Time) {
	b.AppendHistory(now, actor, fmt.Sprintf("coupon %s dropped, no uses left", b.CouponCode.String))
	b.TotalPrice = b.TotalPrice.Add(b.DiscountAmount)
	b.DiscountAmount = decimal.Zero
	b.CouponCode = sql.NullString{}
}

// agenda loads what occupies photographerID on date.
func (u *usecase) agenda(ctx context.Context, photographerID string, date time.Time) (engine.Agenda, error) {
	bookings, err := u.repo.FindBookingsByPhotographerRange(ctx, photographerID, date, date)
	if err != nil {
		return engine.Agenda{}, err
	}
	from := u.calendar.Day(date)
	timeOffs, err := u.repo.FindTimeOffsByPhotographerRange(ctx, photographerID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return engine.Agenda{}, err
	}
	return engine.Agenda{Bookings: bookings, TimeOffs: timeOffs}, nil
}

// dayAgendas loads every photographer's agenda for date, keyed by photographer id.
func (u *usecase) dayAgendas(ctx context.Context, date time.Time) (map[string]engine.Agenda, error) {
	bookings, err := u.repo.FindBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	from := u.calendar.Day(date)
	timeOffs, err := u.repo.FindTimeOffsByRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	agendas := map[string]engine.Agenda{}
	for _, b := range bookings {
		a := agendas[b.PhotographerID.String]
		a.Bookings = append(a.Bookings, b)
		agendas[b.PhotographerID.String] = a
	}
	for _, t := range timeOffs {
		a := agendas[t.PhotographerID]
		a.TimeOffs = append(a.TimeOffs, t)
		agendas[t.PhotographerID] = a
	}
	return agendas, nil
}

// mutateBooking reloads the booking under row lock, applies fn and saves it, all in one transaction.
func (u *usecase) mutateBooking(ctx context.Context, bookingID string, fn func(ctx context.Context, b *entity.Booking) error) (entity.Booking, error) {
	var out entity.Booking
	err := u.repo.WithTransaction(ctx, func(ctx context.Context) error {
		b, err := u.repo.FindBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := fn(ctx, &b); err != nil {
			return err
		}
		b.UpdatedAt = sql.NullTime{Time: u.now(), Valid: true}
		if err := u.repo.UpdateBooking(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	return out, err
}

func (u *usecase) invalidate(ctx context.Context, photographerIDs ...string) {
	seen := map[string]bool{}
	for _, id := range photographerIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if err := u.repo.InvalidateSlots(ctx, id); err != nil {
			u.log.Warn(ctx, "slot cache not invalidated", zap.String("photographer_id", id), zap.Error(err))
		}
	}
}

// emit publishes committed transitions. A failed publish is logged, the transition stands.
func (u *usecase) emit(ctx context.Context, events ...engine.Event) {
	for _, ev := range events {
		fields := []zap.Field{
			zap.String("booking_id", ev.BookingID),
			zap.String("action", string(ev.Action)),
			zap.String("from", string(ev.From)),
			zap.String("to", string(ev.To)),
			zap.String("actor", ev.Actor),
		}
		if err := messagestream.Publish(u.publish, TopicBookingTransitions, ev); err != nil {
			u.log.Error(ctx, "error publish booking transition", err, fields...)
			continue
		}
		u.log.Info(ctx, "booking transition", fields...)
	}
}

func canSee(actor engine.Actor, b entity.Booking) bool {
	switch actor.Role {
	case engine.RoleAdmin, engine.RoleEditor, engine.RoleSystem:
		return true
	case engine.RoleClient:
		return b.ClientID == actor.ID
	case engine.RoleBroker:
		return b.BrokerID.Valid && b.BrokerID.String == actor.ID
	case engine.RolePhotographer:
		return b.PhotographerID.Valid && b.PhotographerID.String == actor.ID
	}
	return false
}

func (u *usecase) ShowBooking(ctx context.Context, actor engine.Actor, bookingID string) (response.Booking, error) {
	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if !canSee(actor, b) {
		return response.Booking{}, errors.AuthorizationError("booking belongs to someone else")
	}
	return response.NewBooking(b), nil
}
