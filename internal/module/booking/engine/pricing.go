package engine

import (
	"fmt"
	"strings"
	"time"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Catalog is a read-only snapshot of services, coupons and coupon usage taken
// at the start of an operation.
type Catalog struct {
	Services map[string]entity.Service
	Coupons  map[string]entity.Coupon
	// CouponUses is code -> client id -> confirmed uses.
	CouponUses map[string]map[string]int
}

func NewCatalog(services []entity.Service, coupons []entity.Coupon) Catalog {
	c := Catalog{
		Services:   make(map[string]entity.Service, len(services)),
		Coupons:    make(map[string]entity.Coupon, len(coupons)),
		CouponUses: map[string]map[string]int{},
	}
	for _, s := range services {
		c.Services[s.ID] = s
	}
	for _, cp := range coupons {
		c.Coupons[NormalizeCouponCode(cp.Code)] = cp
	}
	return c
}

// WithCouponUses records how many times clientID already redeemed code.
func (c Catalog) WithCouponUses(code, clientID string, uses int) Catalog {
	code = NormalizeCouponCode(code)
	if c.CouponUses == nil {
		c.CouponUses = map[string]map[string]int{}
	}
	if c.CouponUses[code] == nil {
		c.CouponUses[code] = map[string]int{}
	}
	c.CouponUses[code][clientID] = uses
	return c
}

func (c Catalog) Service(id string) (entity.Service, error) {
	s, ok := c.Services[id]
	if !ok {
		return entity.Service{}, errors.ValidationError(fmt.Sprintf("unknown service id %q", id))
	}
	return s, nil
}

// Duration sums the durations of ids.
func (c Catalog) Duration(ids []string) (int, error) {
	total := 0
	for _, id := range ids {
		s, err := c.Service(id)
		if err != nil {
			return 0, err
		}
		if s.DurationMinutes < 0 {
			return 0, errors.ValidationError(fmt.Sprintf("service %q has a negative duration", id))
		}
		total += s.DurationMinutes
	}
	return total, nil
}

// FirstOfKind returns the first active service of kind, if any.
func (c Catalog) FirstOfKind(kind entity.ServiceKind) (entity.Service, bool) {
	var found entity.Service
	ok := false
	for _, s := range c.Services {
		if s.Kind != kind || !s.IsActive {
			continue
		}
		// map order is random, keep the choice deterministic
		if !ok || s.ID < found.ID {
			found, ok = s, true
		}
	}
	return found, ok
}

// HasKind reports whether any of ids is a service of kind.
func (c Catalog) HasKind(ids []string, kind entity.ServiceKind) bool {
	for _, id := range ids {
		if s, ok := c.Services[id]; ok && s.Kind == kind {
			return true
		}
	}
	return false
}

// SplitAddons separates regular services from add-ons, preserving order.
func (c Catalog) SplitAddons(ids []string) (services, addons []string, err error) {
	for _, id := range ids {
		s, err := c.Service(id)
		if err != nil {
			return nil, nil, err
		}
		if s.IsAddon() {
			addons = append(addons, id)
		} else {
			services = append(services, id)
		}
	}
	return services, addons, nil
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Pricing struct {
	catalog Catalog
}

func NewPricing(catalog Catalog) Pricing {
	return Pricing{catalog: catalog}
}

func (p Pricing) Catalog() Catalog {
	return p.catalog
}

// ResolvePrice is the client-facing price of serviceID: booking override, then
// client custom price, then catalog price.
func (p Pricing) ResolvePrice(serviceID string, booking *entity.Booking, client *entity.Client) (decimal.Decimal, error) {
	s, err := p.catalog.Service(serviceID)
	if err != nil {
		return decimal.Zero, err
	}
	if booking != nil {
		if v, ok := booking.PriceOverrides.Lookup(serviceID); ok {
			return v, nil
		}
	}
	if client != nil {
		if v, ok := client.CustomPrices.Lookup(serviceID); ok {
			return v, nil
		}
	}
	return s.Price, nil
}

// ResolvePayoutPrice is the photographer-facing price: photographer custom price, then catalog price.
func (p Pricing) ResolvePayoutPrice(serviceID string, photographer *entity.Photographer) (decimal.Decimal, error) {
	s, err := p.catalog.Service(serviceID)
	if err != nil {
		return decimal.Zero, err
	}
	if photographer != nil {
		if v, ok := photographer.CustomPrices.Lookup(serviceID); ok {
			return v, nil
		}
	}
	return s.Price, nil
}

// ComputeTotal sums resolved prices of serviceIDs and flat catalog prices of addonIDs.
// Hidden system-managed services are priced like any other.
func (p Pricing) ComputeTotal(serviceIDs, addonIDs []string, booking *entity.Booking, client *entity.Client) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range serviceIDs {
		v, err := p.ResolvePrice(id, booking, client)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	for _, id := range addonIDs {
		s, err := p.catalog.Service(id)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(s.Price)
	}
	return total, nil
}

// Subtotal prices a mixed id set, routing add-ons to the flat-price branch.
func (p Pricing) Subtotal(ids []string, booking *entity.Booking, client *entity.Client) (decimal.Decimal, error) {
	services, addons, err := p.catalog.SplitAddons(ids)
	if err != nil {
		return decimal.Zero, err
	}
	return p.ComputeTotal(services, addons, booking, client)
}

type CouponResult struct {
	Code     string
	Valid    bool
	Discount decimal.Decimal
	Message  string
}

// CheckCouponLimits rejects c once its global or per-client use limit is spent.
// clientUses is the number of redemptions already recorded for the client.
func CheckCouponLimits(c entity.Coupon, clientUses int) error {
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return errors.ConflictError("coupon usage limit reached")
	}
	if c.MaxUsesPerClient > 0 && clientUses >= c.MaxUsesPerClient {
		return errors.ConflictError("coupon already used by this client")
	}
	return nil
}

// ApplyCoupon checks code for clientID against subtotal. It does not count a use.
func (p Pricing) ApplyCoupon(code, clientID string, subtotal decimal.Decimal, serviceIDs []string, now time.Time) (CouponResult, error) {
	code = NormalizeCouponCode(code)
	res := CouponResult{Code: code, Discount: decimal.Zero}

	fail := func(msg string) (CouponResult, error) {
		res.Message = msg
		return res, errors.ConflictError(msg)
	}

	c, ok := p.catalog.Coupons[code]
	if !ok {
		res.Message = "coupon not found"
		return res, errors.NotFoundError(res.Message)
	}
	if !c.IsActive {
		return fail("coupon is inactive")
	}
	if now.After(c.ExpirationDate) {
		return fail("coupon has expired")
	}
	if err := CheckCouponLimits(c, p.catalog.CouponUses[code][clientID]); err != nil {
		res.Message = err.Error()
		return res, err
	}
	if c.ServiceRestrictionID.Valid {
		matched := false
		for _, id := range serviceIDs {
			if id == c.ServiceRestrictionID.String {
				matched = true
				break
			}
		}
		if !matched {
			return fail("coupon does not apply to the selected services")
		}
	}

	res.Valid = true
	res.Discount = CouponDiscount(c, subtotal)
	res.Message = "coupon applied"
	return res, nil
}

// CouponDiscount is the discount c grants on subtotal, never more than subtotal.
func CouponDiscount(c entity.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() || !c.Value.IsPositive() {
		return decimal.Zero
	}
	var d decimal.Decimal
	switch c.DiscountType {
	case entity.DiscountPercentage:
		d = subtotal.Mul(c.Value).Div(hundred).Round(2)
	default:
		d = c.Value
	}
	return decimal.Min(d, subtotal)
}

// Payout is what the photographer earns for booking: photographer-side prices,
// less shareRatio of any coupon discount, plus tips.
func (p Pricing) Payout(booking entity.Booking, photographer *entity.Photographer, shareRatio decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range booking.ServiceIDs {
		v, err := p.ResolvePayoutPrice(id, photographer)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	if booking.CouponCode.Valid && booking.DiscountAmount.IsPositive() {
		total = total.Sub(booking.DiscountAmount.Mul(shareRatio).Round(2))
	}
	if total.IsNegative() {
		total = decimal.Zero
	}
	return total.Add(booking.TipAmount), nil
}
