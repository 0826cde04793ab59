package engine

import (
	"strings"

	"booking-engine/internal/module/booking/models/entity"

	"github.com/shopspring/decimal"
)

const ReasonWeather = "weather"

// RetentionOffer proposes adding a discounted service instead of cancelling.
type RetentionOffer struct {
	ServiceID     string
	OriginalPrice decimal.Decimal
	Price         decimal.Decimal
	Message       string
}

// CancellationHook runs before a booking enters Cancelado. A nil offer means proceed.
type CancellationHook interface {
	BeforeCancel(b entity.Booking, reason entity.CancelReason) *RetentionOffer
}

// WeatherRetention offers discounted weather insurance on weather cancellations.
type WeatherRetention struct {
	catalog         Catalog
	discountPercent decimal.Decimal
}

func NewWeatherRetention(catalog Catalog, discountPercent decimal.Decimal) WeatherRetention {
	return WeatherRetention{catalog: catalog, discountPercent: discountPercent}
}

func (w WeatherRetention) BeforeCancel(b entity.Booking, reason entity.CancelReason) *RetentionOffer {
	if !strings.EqualFold(reason.Code, ReasonWeather) {
		return nil
	}
	svc, ok := w.catalog.FirstOfKind(entity.ServiceWeatherInsurance)
	if !ok || b.ServiceIDs.Contains(svc.ID) {
		return nil
	}
	price := svc.Price.Sub(svc.Price.Mul(w.discountPercent).Div(hundred)).Round(2)
	if price.IsNegative() {
		price = decimal.Zero
	}
	return &RetentionOffer{
		ServiceID:     svc.ID,
		OriginalPrice: svc.Price,
		Price:         price,
		Message:       "keep the session and add weather insurance at a discount",
	}
}

// NoRetention never intercepts cancellations.
type NoRetention struct{}

func (NoRetention) BeforeCancel(entity.Booking, entity.CancelReason) *RetentionOffer { return nil }
