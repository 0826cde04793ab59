package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const photographerColumns = `id, name, is_active, base_lat, base_lng, radius_km, availability, enabled_services,
	custom_prices, created_at, updated_at`

const clientColumns = `id, name, payment_type, balance, custom_prices, blocked_photographers, office_lat, office_lng,
	payment_customer_id, created_at, updated_at`

const timeOffColumns = `id, photographer_id, start_at, end_at, reason, approved, created_at`

// FindPhotographerByID implements Repositories.
func (r *repositories) FindPhotographerByID(ctx context.Context, id string) (entity.Photographer, error) {
	var photographer entity.Photographer
	err := sqlx.GetContext(ctx, r.conn(ctx), &photographer, `SELECT `+photographerColumns+` FROM photographers WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Photographer{}, notFound("photographer", id)
	}
	if err != nil {
		r.log.Error(ctx, "error find photographer by id", err)
		return entity.Photographer{}, errors.InternalServerError("error find photographer by id")
	}
	return photographer, nil
}

// FindActivePhotographers implements Repositories.
func (r *repositories) FindActivePhotographers(ctx context.Context) ([]entity.Photographer, error) {
	photographers := []entity.Photographer{}
	err := sqlx.SelectContext(ctx, r.conn(ctx), &photographers, `SELECT `+photographerColumns+` FROM photographers WHERE is_active ORDER BY id`)
	if err != nil {
		r.log.Error(ctx, "error find active photographers", err)
		return nil, errors.InternalServerError("error find active photographers")
	}
	return photographers, nil
}

// UpdatePhotographerAvailability implements Repositories.
func (r *repositories) UpdatePhotographerAvailability(ctx context.Context, id string, availability entity.WeeklyAvailability) error {
	res, err := r.conn(ctx).ExecContext(ctx, `UPDATE photographers SET availability = $1, updated_at = NOW() WHERE id = $2`, availability, id)
	if err != nil {
		r.log.Error(ctx, "error update photographer availability", err)
		return errors.InternalServerError("error update photographer availability")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound("photographer", id)
	}
	return nil
}

// FindTimeOffsByPhotographerRange returns approved and pending time-offs that intersect [from, to).
func (r *repositories) FindTimeOffsByPhotographerRange(ctx context.Context, photographerID string, from, to time.Time) ([]entity.TimeOff, error) {
	timeOffs := []entity.TimeOff{}
	query := `SELECT ` + timeOffColumns + ` FROM time_offs WHERE photographer_id = $1 AND start_at < $3 AND end_at > $2`
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &timeOffs, query, photographerID, from, to); err != nil {
		r.log.Error(ctx, "error find time offs by photographer", err)
		return nil, errors.InternalServerError("error find time offs by photographer")
	}
	return timeOffs, nil
}

// FindTimeOffsByRange implements Repositories.
func (r *repositories) FindTimeOffsByRange(ctx context.Context, from, to time.Time) ([]entity.TimeOff, error) {
	timeOffs := []entity.TimeOff{}
	query := `SELECT ` + timeOffColumns + ` FROM time_offs WHERE start_at < $2 AND end_at > $1`
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &timeOffs, query, from, to); err != nil {
		r.log.Error(ctx, "error find time offs", err)
		return nil, errors.InternalServerError("error find time offs")
	}
	return timeOffs, nil
}

// InsertTimeOff implements Repositories.
func (r *repositories) InsertTimeOff(ctx context.Context, timeOff entity.TimeOff) error {
	query := `INSERT INTO time_offs (` + timeOffColumns + `)
		VALUES (:id, :photographer_id, :start_at, :end_at, :reason, :approved, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.conn(ctx), query, timeOff); err != nil {
		r.log.Error(ctx, "error insert time off", err)
		return errors.InternalServerError("error insert time off")
	}
	return nil
}

func (r *repositories) getClient(ctx context.Context, query, id string) (entity.Client, error) {
	var client entity.Client
	err := sqlx.GetContext(ctx, r.conn(ctx), &client, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Client{}, notFound("client", id)
	}
	if err != nil {
		r.log.Error(ctx, "error find client by id", err)
		return entity.Client{}, errors.InternalServerError("error find client by id")
	}
	return client, nil
}

// FindClientByID implements Repositories.
func (r *repositories) FindClientByID(ctx context.Context, id string) (entity.Client, error) {
	return r.getClient(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

// FindClientForUpdate locks the client row, serializing wallet writes inside the transaction.
func (r *repositories) FindClientForUpdate(ctx context.Context, id string) (entity.Client, error) {
	return r.getClient(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1 FOR UPDATE`, id)
}

// UpdateClientBalance implements Repositories.
func (r *repositories) UpdateClientBalance(ctx context.Context, clientID string, balance decimal.Decimal) error {
	_, err := r.conn(ctx).ExecContext(ctx, `UPDATE clients SET balance = $1, updated_at = NOW() WHERE id = $2`, balance, clientID)
	if err != nil {
		r.log.Error(ctx, "error update client balance", err)
		return errors.InternalServerError("error update client balance")
	}
	return nil
}

// InsertWalletTransaction implements Repositories.
func (r *repositories) InsertWalletTransaction(ctx context.Context, tx entity.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (id, client_id, booking_id, kind, amount, balance_after, reference, created_at)
		VALUES (:id, :client_id, :booking_id, :kind, :amount, :balance_after, :reference, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.conn(ctx), query, tx); err != nil {
		r.log.Error(ctx, "error insert wallet transaction", err)
		return errors.InternalServerError("error insert wallet transaction")
	}
	return nil
}

// CreditReferenceExists reports whether a credit with reference was already applied.
func (r *repositories) CreditReferenceExists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM wallet_transactions WHERE kind = 'credit' AND reference = $1)`
	if err := sqlx.GetContext(ctx, r.conn(ctx), &exists, query, reference); err != nil {
		r.log.Error(ctx, "error check credit reference", err)
		return false, errors.InternalServerError("error check credit reference")
	}
	return exists, nil
}
