package request

import (
	"github.com/shopspring/decimal"
)

type Location struct {
	Address string  `json:"address" validate:"required"`
	City    string  `json:"city" validate:"required"`
	Lat     float64 `json:"lat" validate:"required,latitude"`
	Lng     float64 `json:"lng" validate:"required,longitude"`
}

type Quote struct {
	ClientID   string   `json:"client_id"`
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,required"`
	City       string   `json:"city"`
	CouponCode string   `json:"coupon_code"`
}

type CreateBooking struct {
	ClientID       string                     `json:"client_id"`
	BrokerID       string                     `json:"broker_id"`
	PhotographerID string                     `json:"photographer_id"`
	ServiceIDs     []string                   `json:"service_ids" validate:"required,min=1,dive,required"`
	Location       Location                   `json:"location"`
	Date           string                     `json:"date" validate:"omitempty,date"`
	StartTime      string                     `json:"start_time" validate:"omitempty,clock"`
	CouponCode     string                     `json:"coupon_code"`
	PaymentChoice  string                     `json:"payment_choice" validate:"omitempty,oneof=pay_now pay_later"`
	BypassRadius   bool                       `json:"bypass_radius"`
	PriceOverrides map[string]decimal.Decimal `json:"price_overrides"`
	// Flash books a same-day slot returned by the flash search, with the rush fee.
	Flash bool `json:"flash"`
}

type ScheduleDraft struct {
	PhotographerID string `json:"photographer_id" validate:"required"`
	Date           string `json:"date" validate:"required,date"`
	StartTime      string `json:"start_time" validate:"required,clock"`
	PaymentChoice  string `json:"payment_choice" validate:"omitempty,oneof=pay_now pay_later"`
	BypassRadius   bool   `json:"bypass_radius"`
}

type Reschedule struct {
	PhotographerID string `json:"photographer_id"`
	Date           string `json:"date" validate:"required,date"`
	StartTime      string `json:"start_time" validate:"required,clock"`
	BypassRadius   bool   `json:"bypass_radius"`
}

type EditServices struct {
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,required"`
}

type Complete struct {
	InternalNotes string `json:"internal_notes"`
	CommonAreaID  string `json:"common_area_id"`
}

const (
	RetentionAccept  = "accept"
	RetentionDecline = "decline"
)

type Cancel struct {
	ReasonCode   string `json:"reason_code" validate:"required"`
	ReasonDetail string `json:"reason_detail"`
	// Retention is empty on the first call. A weather cancellation answered with an
	// offer is repeated with "accept" or "decline".
	Retention string `json:"retention" validate:"omitempty,oneof=accept decline"`
}

type ForceStatus struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

type Tip struct {
	Amount decimal.Decimal `json:"amount"`
}

type KeyState struct {
	State string `json:"state" validate:"required,oneof=awaiting_pickup picked_up returned"`
}

type Search struct {
	ClientID     string   `json:"client_id"`
	ServiceIDs   []string `json:"service_ids" validate:"required,min=1,dive,required"`
	Location     Location `json:"location"`
	Date         string   `json:"date" validate:"required,date"`
	BypassRadius bool     `json:"bypass_radius"`
}

type Flash struct {
	ClientID   string   `json:"client_id"`
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,required"`
	Location   Location `json:"location"`
}

type TimeOff struct {
	PhotographerID string `json:"photographer_id" validate:"required"`
	StartAt        string `json:"start_at" validate:"required,datetime=2006-01-02T15:04"`
	EndAt          string `json:"end_at" validate:"required,datetime=2006-01-02T15:04"`
	Reason         string `json:"reason"`
}

type DayAvailability struct {
	Weekday int      `json:"weekday" validate:"min=0,max=6"`
	Enabled *bool    `json:"enabled"`
	Slots   []string `json:"slots" validate:"omitempty,dive,clock"`
}

// CreditPosted is consumed from the payment_credit_posted topic.
type CreditPosted struct {
	EventID  string          `json:"event_id" validate:"required"`
	ClientID string          `json:"client_id" validate:"required"`
	ChargeID string          `json:"charge_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// PaymentRecheck is the recheck_payment task payload.
type PaymentRecheck struct {
	BookingID string `json:"booking_id" validate:"required"`
	ChargeID  string `json:"charge_id" validate:"required"`
	ClientID  string `json:"client_id" validate:"required"`
}

// Charge is sent to the payment provider.
type Charge struct {
	CustomerID  string          `json:"customer"`
	Amount      decimal.Decimal `json:"value"`
	DueDate     string          `json:"dueDate"`
	Description string          `json:"description"`
	Reference   string          `json:"externalReference"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
