package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
)

const couponColumns = `code, discount_type, value, expiration_date, max_uses, max_uses_per_client,
	service_restriction_id, is_active, used_count`

// FindServices returns the whole catalog, inactive services included so existing bookings keep pricing.
func (r *repositories) FindServices(ctx context.Context) ([]entity.Service, error) {
	services := []entity.Service{}
	query := `SELECT id, name, category, kind, duration_minutes, price, is_visible, is_system_managed, is_active
		FROM services ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &services, query); err != nil {
		r.log.Error(ctx, "error find services", err)
		return nil, errors.InternalServerError("error find services")
	}
	return services, nil
}

func (r *repositories) getCoupon(ctx context.Context, query, code string) (entity.Coupon, error) {
	var coupon entity.Coupon
	err := sqlx.GetContext(ctx, r.conn(ctx), &coupon, query, code)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Coupon{}, notFound("coupon", code)
	}
	if err != nil {
		r.log.Error(ctx, "error find coupon by code", err)
		return entity.Coupon{}, errors.InternalServerError("error find coupon by code")
	}
	return coupon, nil
}

// FindCouponByCode implements Repositories.
func (r *repositories) FindCouponByCode(ctx context.Context, code string) (entity.Coupon, error) {
	return r.getCoupon(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)
}

// FindCouponForUpdate locks the coupon row, serializing redemptions inside the transaction.
func (r *repositories) FindCouponForUpdate(ctx context.Context, code string) (entity.Coupon, error) {
	return r.getCoupon(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1 FOR UPDATE`, code)
}

// CountCouponUses counts confirmed redemptions of code by clientID.
func (r *repositories) CountCouponUses(ctx context.Context, code, clientID string) (int, error) {
	var uses int
	query := `SELECT COUNT(*) FROM coupon_redemptions WHERE code = $1 AND client_id = $2`
	if err := sqlx.GetContext(ctx, r.conn(ctx), &uses, query, code, clientID); err != nil {
		r.log.Error(ctx, "error count coupon uses", err)
		return 0, errors.InternalServerError("error count coupon uses")
	}
	return uses, nil
}

// RedeemCoupon records a use of code and bumps its global counter.
func (r *repositories) RedeemCoupon(ctx context.Context, code, clientID, bookingID string) error {
	conn := r.conn(ctx)
	if _, err := conn.ExecContext(ctx,
		`INSERT INTO coupon_redemptions (code, client_id, booking_id) VALUES ($1, $2, $3)`,
		code, clientID, bookingID); err != nil {
		r.log.Error(ctx, "error insert coupon redemption", err)
		return errors.InternalServerError("error insert coupon redemption")
	}
	if _, err := conn.ExecContext(ctx, `UPDATE coupons SET used_count = used_count + 1 WHERE code = $1`, code); err != nil {
		r.log.Error(ctx, "error increment coupon usage", err)
		return errors.InternalServerError("error increment coupon usage")
	}
	return nil
}
