package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"booking-engine/config"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/database"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/lock"
	"booking-engine/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

type repositories struct {
	db                 *sqlx.DB
	log                log.Logger
	httpClient         *circuit.HTTPClient
	redisClient        *redis.Client
	locker             lock.Locker
	asynqClient        *asynq.Client
	cfgUserService     *config.UserServiceConfig
	cfgPaymentProvider *config.PaymentProviderConfig
	slotCacheTTL       time.Duration
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	CreateCharge(ctx context.Context, req request.Charge) (response.Charge, error)
	CancelCharge(ctx context.Context, chargeID string) error
	GetCharge(ctx context.Context, chargeID string) (response.Charge, error)
	// redis
	Lock(ctx context.Context, keys ...string) (func(), error)
	GetCachedSlots(ctx context.Context, photographerID string, date time.Time, durationMinutes int) ([]string, bool)
	SetCachedSlots(ctx context.Context, photographerID string, date time.Time, durationMinutes int, slots []string) error
	InvalidateSlots(ctx context.Context, photographerID string) error
	// asynq
	EnqueuePaymentRecheck(ctx context.Context, payload request.PaymentRecheck) (string, error)
	// db
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	FindBookingByID(ctx context.Context, id string) (entity.Booking, error)
	FindBookingForUpdate(ctx context.Context, id string) (entity.Booking, error)
	FindBookingsByPhotographerRange(ctx context.Context, photographerID string, from, to time.Time) ([]entity.Booking, error)
	FindBookingsByDate(ctx context.Context, date time.Time) ([]entity.Booking, error)
	FindPendingPayNowBookings(ctx context.Context, clientID string) ([]entity.Booking, error)
	InsertBooking(ctx context.Context, booking entity.Booking) error
	UpdateBooking(ctx context.Context, booking entity.Booking) error
	FindPhotographerByID(ctx context.Context, id string) (entity.Photographer, error)
	FindActivePhotographers(ctx context.Context) ([]entity.Photographer, error)
	UpdatePhotographerAvailability(ctx context.Context, id string, availability entity.WeeklyAvailability) error
	FindTimeOffsByPhotographerRange(ctx context.Context, photographerID string, from, to time.Time) ([]entity.TimeOff, error)
	FindTimeOffsByRange(ctx context.Context, from, to time.Time) ([]entity.TimeOff, error)
	InsertTimeOff(ctx context.Context, timeOff entity.TimeOff) error
	FindClientByID(ctx context.Context, id string) (entity.Client, error)
	FindClientForUpdate(ctx context.Context, id string) (entity.Client, error)
	UpdateClientBalance(ctx context.Context, clientID string, balance decimal.Decimal) error
	InsertWalletTransaction(ctx context.Context, tx entity.WalletTransaction) error
	CreditReferenceExists(ctx context.Context, reference string) (bool, error)
	FindServices(ctx context.Context) ([]entity.Service, error)
	FindCouponByCode(ctx context.Context, code string) (entity.Coupon, error)
	FindCouponForUpdate(ctx context.Context, code string) (entity.Coupon, error)
	CountCouponUses(ctx context.Context, code, clientID string) (int, error)
	RedeemCoupon(ctx context.Context, code, clientID, bookingID string) error
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, redisClient *redis.Client, locker lock.Locker, asynqClient *asynq.Client, cfgUserService *config.UserServiceConfig, cfgPaymentProvider *config.PaymentProviderConfig, slotCacheTTL time.Duration) Repositories {
	return &repositories{
		db:                 db,
		log:                log,
		httpClient:         httpClient,
		redisClient:        redisClient,
		locker:             locker,
		asynqClient:        asynqClient,
		cfgUserService:     cfgUserService,
		cfgPaymentProvider: cfgPaymentProvider,
		slotCacheTTL:       slotCacheTTL,
	}
}

// conn returns the transaction carried by ctx, or the pool.
func (r *repositories) conn(ctx context.Context) sqlx.ExtContext {
	if tx, ok := database.TxFrom(ctx); ok {
		return tx
	}
	return r.db
}

// WithTransaction runs fn in one database transaction. Nested calls join the outer one.
func (r *repositories) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := database.TxFrom(ctx); ok {
		return fn(ctx)
	}

	span, ctx := apm.StartSpan(ctx, "WithTransaction", "db.postgresql")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error begin transaction", err)
		return errors.InternalServerError("error begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(database.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error(ctx, "error rollback transaction", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(ctx, "error commit transaction", err)
		return errors.InternalServerError("error commit transaction")
	}
	return nil
}

func dateParam(t time.Time) string {
	return t.Format("2006-01-02")
}

func notFound(kind, id string) error {
	return errors.NotFoundError(fmt.Sprintf("%s %s not found", kind, id))
}

// exclusion_violation raised by bookings_no_overlap.
const pqExclusionViolation = "23P01"

func slotTaken(err error) bool {
	var pqErr *pq.Error
	return stderrors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation
}
