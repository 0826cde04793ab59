package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PaymentType string

const (
	PrePaid  PaymentType = "pre_paid"
	PostPaid PaymentType = "post_paid"
)

type ServiceKind string

const (
	ServiceRegular          ServiceKind = "regular"
	ServiceAddon            ServiceKind = "addon"
	ServiceTravelSurcharge  ServiceKind = "travel_surcharge"
	ServiceRushFee          ServiceKind = "rush_fee"
	ServiceWeatherInsurance ServiceKind = "weather_insurance"
	ServiceKeyPickup        ServiceKind = "key_pickup"
)

type Service struct {
	ID              string          `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	Category        string          `db:"category" json:"category"`
	Kind            ServiceKind     `db:"kind" json:"kind"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Price           decimal.Decimal `db:"price" json:"price"`
	IsVisible       bool            `db:"is_visible" json:"is_visible"`
	IsSystemManaged bool            `db:"is_system_managed" json:"is_system_managed"`
	IsActive        bool            `db:"is_active" json:"is_active"`
}

func (s Service) IsAddon() bool {
	return s.Kind == ServiceAddon
}

type Photographer struct {
	ID              string             `db:"id" json:"id"`
	Name            string             `db:"name" json:"name"`
	IsActive        bool               `db:"is_active" json:"is_active"`
	BaseLat         float64            `db:"base_lat" json:"base_lat"`
	BaseLng         float64            `db:"base_lng" json:"base_lng"`
	RadiusKm        float64            `db:"radius_km" json:"radius_km"`
	Availability    WeeklyAvailability `db:"availability" json:"availability"`
	EnabledServices StringSet          `db:"enabled_services" json:"enabled_services"`
	CustomPrices    PriceTable         `db:"custom_prices" json:"custom_prices"`
	CreatedAt       time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt       sql.NullTime       `db:"updated_at" json:"-"`
}

func (p Photographer) Base() Coordinate {
	return Coordinate{Lat: p.BaseLat, Lng: p.BaseLng}
}

type Client struct {
	ID                   string          `db:"id" json:"id"`
	Name                 string          `db:"name" json:"name"`
	PaymentType          PaymentType     `db:"payment_type" json:"payment_type"`
	Balance              decimal.Decimal `db:"balance" json:"balance"`
	CustomPrices         PriceTable      `db:"custom_prices" json:"custom_prices"`
	BlockedPhotographers StringSet       `db:"blocked_photographers" json:"blocked_photographers"`
	OfficeLat            float64         `db:"office_lat" json:"office_lat"`
	OfficeLng            float64         `db:"office_lng" json:"office_lng"`
	PaymentCustomerID    string          `db:"payment_customer_id" json:"payment_customer_id"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            sql.NullTime    `db:"updated_at" json:"-"`
}

func (c Client) Office() Coordinate {
	return Coordinate{Lat: c.OfficeLat, Lng: c.OfficeLng}
}

func (c Client) IsPrePaid() bool {
	return c.PaymentType == PrePaid
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Coupon struct {
	Code                 string          `db:"code" json:"code"`
	DiscountType         DiscountType    `db:"discount_type" json:"discount_type"`
	Value                decimal.Decimal `db:"value" json:"value"`
	ExpirationDate       time.Time       `db:"expiration_date" json:"expiration_date"`
	MaxUses              int             `db:"max_uses" json:"max_uses"`
	MaxUsesPerClient     int             `db:"max_uses_per_client" json:"max_uses_per_client"`
	ServiceRestrictionID sql.NullString  `db:"service_restriction_id" json:"-"`
	IsActive             bool            `db:"is_active" json:"is_active"`
	UsedCount            int             `db:"used_count" json:"used_count"`
}

type TimeOff struct {
	ID             string    `db:"id" json:"id"`
	PhotographerID string    `db:"photographer_id" json:"photographer_id"`
	StartAt        time.Time `db:"start_at" json:"start_at"`
	EndAt          time.Time `db:"end_at" json:"end_at"`
	Reason         string    `db:"reason" json:"reason"`
	Approved       bool      `db:"approved" json:"approved"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Status string

const (
	StatusDraft     Status = "Rascunho"
	StatusPending   Status = "Pendente"
	StatusConfirmed Status = "Confirmado"
	StatusDone      Status = "Realizado"
	StatusDelivered Status = "Concluído"
	StatusCancelled Status = "Cancelado"
)

// IsTerminal reports whether no further client-driven change is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusDelivered || s == StatusCancelled
}

type PaymentChoice string

const (
	PaymentAuto     PaymentChoice = ""
	PaymentPayNow   PaymentChoice = "pay_now"
	PaymentPayLater PaymentChoice = "pay_later"
)

type KeyState string

const (
	KeyNone           KeyState = "none"
	KeyAwaitingPickup KeyState = "awaiting_pickup"
	KeyPickedUp       KeyState = "picked_up"
	KeyReturned       KeyState = "returned"
)

type Booking struct {
	ID             string          `db:"id" json:"id"`
	ClientID       string          `db:"client_id" json:"client_id"`
	BrokerID       sql.NullString  `db:"broker_id" json:"-"`
	PhotographerID sql.NullString  `db:"photographer_id" json:"-"`
	ServiceIDs     StringSet       `db:"service_ids" json:"service_ids"`
	Date           sql.NullTime    `db:"date" json:"-"`
	StartTime      sql.NullString  `db:"start_time" json:"-"`
	EndTime        sql.NullString  `db:"end_time" json:"-"`
	Address        string          `db:"address" json:"address"`
	City           string          `db:"city" json:"city"`
	Lat            float64         `db:"lat" json:"lat"`
	Lng            float64         `db:"lng" json:"lng"`
	Status         Status          `db:"status" json:"status"`
	TotalPrice     decimal.Decimal `db:"total_price" json:"total_price"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	CouponCode     sql.NullString  `db:"coupon_code" json:"-"`
	CouponRedeemed bool            `db:"coupon_redeemed" json:"coupon_redeemed"`
	TipAmount      decimal.Decimal `db:"tip_amount" json:"tip_amount"`
	PriceOverrides PriceTable      `db:"price_overrides" json:"price_overrides"`
	PaymentChoice  PaymentChoice   `db:"payment_choice" json:"payment_choice"`
	WalletDebited  decimal.Decimal `db:"wallet_debited" json:"wallet_debited"`
	ChargeID       sql.NullString  `db:"charge_id" json:"-"`
	CancelReason   CancelReason    `db:"cancel_reason" json:"cancel_reason"`
	InternalNotes  string          `db:"internal_notes" json:"internal_notes"`
	CommonAreaID   sql.NullString  `db:"common_area_id" json:"-"`
	KeyState       KeyState        `db:"key_state" json:"key_state"`
	History        HistoryLog      `db:"history" json:"history"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      sql.NullTime    `db:"updated_at" json:"-"`
}

func (b Booking) Location() Coordinate {
	return Coordinate{Lat: b.Lat, Lng: b.Lng}
}

// IsScheduled reports whether the booking occupies a concrete slot.
func (b Booking) IsScheduled() bool {
	return b.Date.Valid && b.StartTime.Valid && b.EndTime.Valid
}

// AppendHistory records note on behalf of actor.
func (b *Booking) AppendHistory(at time.Time, actor, note string) {
	b.History = append(b.History, HistoryEntry{Timestamp: at, Actor: actor, Note: note})
}

type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Note      string    `json:"note"`
}

type CancelReason struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type WalletTransactionKind string

const (
	WalletDebit  WalletTransactionKind = "debit"
	WalletCredit WalletTransactionKind = "credit"
	WalletRefund WalletTransactionKind = "refund"
	WalletTip    WalletTransactionKind = "tip"
)

type WalletTransaction struct {
	ID           string                `db:"id" json:"id"`
	ClientID     string                `db:"client_id" json:"client_id"`
	BookingID    sql.NullString        `db:"booking_id" json:"-"`
	Kind         WalletTransactionKind `db:"kind" json:"kind"`
	Amount       decimal.Decimal       `db:"amount" json:"amount"`
	BalanceAfter decimal.Decimal       `db:"balance_after" json:"balance_after"`
	Reference    string                `db:"reference" json:"reference"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
}
