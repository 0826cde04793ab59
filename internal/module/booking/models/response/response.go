package response

import (
	"time"

	"booking-engine/internal/module/booking/models/entity"

	"github.com/shopspring/decimal"
)

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

// Charge is the payment provider view of an external charge.
type Charge struct {
	ChargeID   string          `json:"id"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"value"`
	QRPayload  string          `json:"qrPayload"`
	InvoiceURL string          `json:"invoiceUrl"`
}

// IsPaid reports whether the provider settled the charge.
func (c Charge) IsPaid() bool {
	switch c.Status {
	case "RECEIVED", "CONFIRMED", "RECEIVED_IN_CASH", "paid":
		return true
	}
	return false
}

type Coupon struct {
	Code     string          `json:"code"`
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Message  string          `json:"message"`
}

type WalletProjection struct {
	Balance          decimal.Decimal `json:"balance"`
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
	Floor            decimal.Decimal `json:"floor"`
	Covered          bool            `json:"covered"`
	PayLaterAllowed  bool            `json:"pay_later_allowed"`
}

type Quote struct {
	ServiceIDs      []string          `json:"service_ids"`
	DurationMinutes int               `json:"duration_minutes"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Discount        decimal.Decimal   `json:"discount"`
	Total           decimal.Decimal   `json:"total"`
	Coupon          *Coupon           `json:"coupon,omitempty"`
	Wallet          *WalletProjection `json:"wallet,omitempty"`
}

type AvailableSlots struct {
	PhotographerID  string   `json:"photographer_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}

type Candidate struct {
	PhotographerID string   `json:"photographer_id"`
	Name           string   `json:"name"`
	DistanceKm     float64  `json:"distance_km"`
	Slots          []string `json:"slots"`
}

type SearchResult struct {
	Date            string      `json:"date"`
	ServiceIDs      []string    `json:"service_ids"`
	DurationMinutes int         `json:"duration_minutes"`
	Candidates      []Candidate `json:"candidates"`
}

type FlashResult struct {
	Found           bool     `json:"found"`
	PhotographerID  string   `json:"photographer_id,omitempty"`
	Date            string   `json:"date,omitempty"`
	Slot            string   `json:"slot,omitempty"`
	DistanceKm      float64  `json:"distance_km,omitempty"`
	ServiceIDs      []string `json:"service_ids"`
	DurationMinutes int      `json:"duration_minutes"`
}

type Booking struct {
	ID             string                `json:"id"`
	ClientID       string                `json:"client_id"`
	BrokerID       string                `json:"broker_id,omitempty"`
	PhotographerID string                `json:"photographer_id,omitempty"`
	ServiceIDs     []string              `json:"service_ids"`
	Date           string                `json:"date,omitempty"`
	StartTime      string                `json:"start_time,omitempty"`
	EndTime        string                `json:"end_time,omitempty"`
	Address        string                `json:"address"`
	City           string                `json:"city"`
	Status         entity.Status         `json:"status"`
	TotalPrice     decimal.Decimal       `json:"total_price"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	CouponCode     string                `json:"coupon_code,omitempty"`
	TipAmount      decimal.Decimal       `json:"tip_amount"`
	PaymentChoice  entity.PaymentChoice  `json:"payment_choice,omitempty"`
	WalletDebited  decimal.Decimal       `json:"wallet_debited"`
	KeyState       entity.KeyState       `json:"key_state"`
	CancelReason   *entity.CancelReason  `json:"cancel_reason,omitempty"`
	InternalNotes  string                `json:"internal_notes,omitempty"`
	CommonAreaID   string                `json:"common_area_id,omitempty"`
	History        []entity.HistoryEntry `json:"history"`
	Charge         *Charge               `json:"charge,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

func NewBooking(b entity.Booking) Booking {
	out := Booking{
		ID:             b.ID,
		ClientID:       b.ClientID,
		BrokerID:       b.BrokerID.String,
		PhotographerID: b.PhotographerID.String,
		ServiceIDs:     []string(b.ServiceIDs),
		StartTime:      b.StartTime.String,
		EndTime:        b.EndTime.String,
		Address:        b.Address,
		City:           b.City,
		Status:         b.Status,
		TotalPrice:     b.TotalPrice,
		DiscountAmount: b.DiscountAmount,
		CouponCode:     b.CouponCode.String,
		TipAmount:      b.TipAmount,
		PaymentChoice:  b.PaymentChoice,
		WalletDebited:  b.WalletDebited,
		KeyState:       b.KeyState,
		InternalNotes:  b.InternalNotes,
		CommonAreaID:   b.CommonAreaID.String,
		History:        []entity.HistoryEntry(b.History),
		CreatedAt:      b.CreatedAt,
	}
	if b.Date.Valid {
		out.Date = b.Date.Time.Format("2006-01-02")
	}
	if b.CancelReason.Code != "" {
		reason := b.CancelReason
		out.CancelReason = &reason
	}
	return out
}

type RetentionOffer struct {
	ServiceID     string          `json:"service_id"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Price         decimal.Decimal `json:"price"`
	Message       string          `json:"message"`
}

// Cancellation is either a finalized cancellation, a pending retention offer, or the
// booking kept after the offer was accepted.
type Cancellation struct {
	Cancelled bool            `json:"cancelled"`
	Offer     *RetentionOffer `json:"offer,omitempty"`
	Booking   *Booking        `json:"booking,omitempty"`
}

type Payout struct {
	BookingID      string          `json:"booking_id"`
	PhotographerID string          `json:"photographer_id"`
	Amount         decimal.Decimal `json:"amount"`
	ShareRatio     decimal.Decimal `json:"share_ratio"`
}

type Availability struct {
	PhotographerID string                    `json:"photographer_id"`
	Availability   entity.WeeklyAvailability `json:"availability"`
}

type TimeOff struct {
	ID             string    `json:"id"`
	PhotographerID string    `json:"photographer_id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Reason         string    `json:"reason"`
	Approved       bool      `json:"approved"`
}

type PaymentRecheck struct {
	BookingID string `json:"booking_id"`
	TaskID    string `json:"task_id"`
}
