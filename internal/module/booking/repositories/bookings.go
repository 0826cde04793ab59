package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, client_id, broker_id, photographer_id, service_ids, date, start_time, end_time,
	address, city, lat, lng, status, total_price, discount_amount, coupon_code, coupon_redeemed, tip_amount,
	price_overrides, payment_choice, wallet_debited, charge_id, cancel_reason, internal_notes, common_area_id,
	key_state, history, created_at, updated_at`

func (r *repositories) getBooking(ctx context.Context, query, id string) (entity.Booking, error) {
	var booking entity.Booking
	err := sqlx.GetContext(ctx, r.conn(ctx), &booking, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, notFound("booking", id)
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	return r.getBooking(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

// FindBookingForUpdate locks the booking row until the surrounding transaction ends.
func (r *repositories) FindBookingForUpdate(ctx context.Context, id string) (entity.Booking, error) {
	return r.getBooking(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

// FindBookingsByPhotographerRange implements Repositories. Both dates are inclusive.
func (r *repositories) FindBookingsByPhotographerRange(ctx context.Context, photographerID string, from, to time.Time) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE photographer_id = $1 AND date BETWEEN $2 AND $3 AND status <> 'Cancelado'
		ORDER BY date, start_time`
	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &bookings, query, photographerID, dateParam(from), dateParam(to)); err != nil {
		r.log.Error(ctx, "error find bookings by photographer", err)
		return nil, errors.InternalServerError("error find bookings by photographer")
	}
	return bookings, nil
}

// FindBookingsByDate implements Repositories.
func (r *repositories) FindBookingsByDate(ctx context.Context, date time.Time) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE date = $1 AND status <> 'Cancelado' AND photographer_id IS NOT NULL
		ORDER BY photographer_id, start_time`
	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &bookings, query, dateParam(date)); err != nil {
		r.log.Error(ctx, "error find bookings by date", err)
		return nil, errors.InternalServerError("error find bookings by date")
	}
	return bookings, nil
}

// FindPendingPayNowBookings returns the client's bookings awaiting an external payment, oldest first.
func (r *repositories) FindPendingPayNowBookings(ctx context.Context, clientID string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE client_id = $1 AND status = 'Pendente' AND payment_choice = 'pay_now'
		ORDER BY created_at
		FOR UPDATE`
	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &bookings, query, clientID); err != nil {
		r.log.Error(ctx, "error find pending bookings", err)
		return nil, errors.InternalServerError("error find pending bookings")
	}
	return bookings, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES (
		:id, :client_id, :broker_id, :photographer_id, :service_ids, :date, :start_time, :end_time,
		:address, :city, :lat, :lng, :status, :total_price, :discount_amount, :coupon_code, :coupon_redeemed, :tip_amount,
		:price_overrides, :payment_choice, :wallet_debited, :charge_id, :cancel_reason, :internal_notes, :common_area_id,
		:key_state, :history, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.conn(ctx), query, booking); err != nil {
		if slotTaken(err) {
			return errors.ConflictError("slot is no longer available")
		}
		r.log.Error(ctx, "error insert booking", err)
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// UpdateBooking implements Repositories.
func (r *repositories) UpdateBooking(ctx context.Context, booking entity.Booking) error {
	query := `UPDATE bookings SET
		broker_id = :broker_id, photographer_id = :photographer_id, service_ids = :service_ids,
		date = :date, start_time = :start_time, end_time = :end_time,
		status = :status, total_price = :total_price, discount_amount = :discount_amount,
		coupon_code = :coupon_code, coupon_redeemed = :coupon_redeemed, tip_amount = :tip_amount,
		price_overrides = :price_overrides, payment_choice = :payment_choice, wallet_debited = :wallet_debited,
		charge_id = :charge_id, cancel_reason = :cancel_reason, internal_notes = :internal_notes,
		common_area_id = :common_area_id, key_state = :key_state, history = :history, updated_at = :updated_at
		WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.conn(ctx), query, booking)
	if err != nil {
		if slotTaken(err) {
			return errors.ConflictError("slot is no longer available")
		}
		r.log.Error(ctx, "error update booking", err)
		return errors.InternalServerError("error update booking")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("booking", booking.ID)
	}
	return nil
}
