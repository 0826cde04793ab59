package usecases

import (
	"context"
	"time"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/helpers"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (u *usecase) Quote(ctx context.Context, actor engine.Actor, req *request.Quote) (response.Quote, error) {
	clientID, err := clientFor(actor, req.ClientID, false)
	if err != nil {
		return response.Quote{}, err
	}

	catalog, err := u.loadCatalog(ctx, req.CouponCode, clientID)
	if err != nil {
		return response.Quote{}, err
	}

	ids, err := u.selectServices(catalog, actor, req.ServiceIDs, req.City, nil)
	if err != nil {
		return response.Quote{}, err
	}

	duration, err := catalog.Duration(ids)
	if err != nil {
		return response.Quote{}, err
	}

	var client *entity.Client
	if clientID != "" {
		c, err := u.repo.FindClientByID(ctx, clientID)
		if err != nil {
			return response.Quote{}, err
		}
		client = &c
	}

	pricing := engine.NewPricing(catalog)
	subtotal, err := pricing.Subtotal(ids, nil, client)
	if err != nil {
		return response.Quote{}, err
	}

	out := response.Quote{
		ServiceIDs:      ids,
		DurationMinutes: duration,
		Subtotal:        subtotal,
		Discount:        decimal.Zero,
	}

	if engine.NormalizeCouponCode(req.CouponCode) != "" {
		res, err := pricing.ApplyCoupon(req.CouponCode, clientID, subtotal, ids, u.now())
		if err != nil && !errors.IsConflict(err) && !errors.IsNotFound(err) {
			return response.Quote{}, err
		}
		out.Coupon = &response.Coupon{Code: res.Code, Valid: res.Valid, Discount: res.Discount, Message: res.Message}
		out.Discount = res.Discount
	}
	out.Total = subtotal.Sub(out.Discount)

	if client != nil && client.IsPrePaid() {
		out.Wallet = &response.WalletProjection{
			Balance:          client.Balance,
			ProjectedBalance: u.ledger.ProjectedBalance(client.Balance, out.Total),
			Floor:            u.ledger.Floor(),
			Covered:          client.Balance.GreaterThanOrEqual(out.Total),
			PayLaterAllowed:  u.ledger.CanDebit(client.Balance, out.Total),
		}
	}
	return out, nil
}

func (u *usecase) AvailableSlots(ctx context.Context, photographerID, date string, durationMinutes int) (response.AvailableSlots, error) {
	if durationMinutes <= 0 {
		return response.AvailableSlots{}, errors.ValidationError("duration must be positive")
	}
	day, err := helpers.ParseDate(date, u.settings.Location)
	if err != nil {
		return response.AvailableSlots{}, err
	}

	out := response.AvailableSlots{PhotographerID: photographerID, Date: day.Format(helpers.DateLayout), DurationMinutes: durationMinutes}
	if slots, ok := u.repo.GetCachedSlots(ctx, photographerID, day, durationMinutes); ok {
		out.Slots = slots
		return out, nil
	}

	p, err := u.repo.FindPhotographerByID(ctx, photographerID)
	if err != nil {
		return response.AvailableSlots{}, err
	}
	agenda, err := u.agenda(ctx, photographerID, day)
	if err != nil {
		return response.AvailableSlots{}, err
	}

	out.Slots = u.calendar.AvailableSlots(p, agenda, day, durationMinutes, "")
	if err := u.repo.SetCachedSlots(ctx, photographerID, day, durationMinutes, out.Slots); err != nil {
		u.log.Warn(ctx, "slot listing not cached", zap.String("photographer_id", photographerID), zap.Error(err))
	}
	return out, nil
}

// matchingContext gathers what both search flows need about the requester.
func (u *usecase) matchingContext(ctx context.Context, actor engine.Actor, requestedClient string, serviceIDs []string, city string, extra ...string) (engine.Catalog, []string, int, *entity.Client, error) {
	clientID, err := clientFor(actor, requestedClient, false)
	if err != nil {
		return engine.Catalog{}, nil, 0, nil, err
	}
	catalog, err := u.loadCatalog(ctx, "", "")
	if err != nil {
		return engine.Catalog{}, nil, 0, nil, err
	}
	ids, err := u.selectServices(catalog, actor, serviceIDs, city, nil)
	if err != nil {
		return engine.Catalog{}, nil, 0, nil, err
	}
	for _, id := range extra {
		if !entity.StringSet(ids).Contains(id) {
			ids = append(ids, id)
		}
	}
	duration, err := catalog.Duration(ids)
	if err != nil {
		return engine.Catalog{}, nil, 0, nil, err
	}
	if duration <= 0 {
		return engine.Catalog{}, nil, 0, nil, errors.ValidationError("selected services have no duration")
	}

	var client *entity.Client
	if clientID != "" {
		c, err := u.repo.FindClientByID(ctx, clientID)
		if err != nil {
			return engine.Catalog{}, nil, 0, nil, err
		}
		client = &c
	}
	return catalog, ids, duration, client, nil
}

func (u *usecase) SearchPhotographers(ctx context.Context, actor engine.Actor, req *request.Search) (response.SearchResult, error) {
	if req.BypassRadius && !actor.IsStaff() {
		return response.SearchResult{}, errors.AuthorizationError("only staff may search outside coverage")
	}
	day, err := helpers.ParseDate(req.Date, u.settings.Location)
	if err != nil {
		return response.SearchResult{}, err
	}
	if day.Before(u.today()) {
		return response.SearchResult{}, errors.ValidationError("date is in the past")
	}

	catalog, ids, duration, client, err := u.matchingContext(ctx, actor, req.ClientID, req.ServiceIDs, req.Location.City)
	if err != nil {
		return response.SearchResult{}, err
	}

	photographers, err := u.repo.FindActivePhotographers(ctx)
	if err != nil {
		return response.SearchResult{}, err
	}
	agendas, err := u.dayAgendas(ctx, day)
	if err != nil {
		return response.SearchResult{}, err
	}

	matcher := engine.NewMatcher(u.calendar, catalog)
	site := entity.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	found := matcher.FindEligiblePhotographers(photographers, agendas, engine.Job{
		Location:        matcher.RouteLocation(site, client, ids),
		ServiceIDs:      ids,
		Date:            day,
		DurationMinutes: duration,
		BypassRadius:    req.BypassRadius,
		Client:          client,
	})

	out := response.SearchResult{
		Date:            day.Format(helpers.DateLayout),
		ServiceIDs:      ids,
		DurationMinutes: duration,
		Candidates:      make([]response.Candidate, 0, len(found)),
	}
	for _, c := range found {
		out.Candidates = append(out.Candidates, response.Candidate{
			PhotographerID: c.Photographer.ID,
			Name:           c.Photographer.Name,
			DistanceKm:     c.DistanceKm,
			Slots:          c.Slots,
		})
	}
	return out, nil
}

func (u *usecase) FlashSearch(ctx context.Context, actor engine.Actor, req *request.Flash) (response.FlashResult, error) {
	services, err := u.repo.FindServices(ctx)
	if err != nil {
		return response.FlashResult{}, err
	}
	var extra []string
	if rush, ok := engine.NewCatalog(services, nil).FirstOfKind(entity.ServiceRushFee); ok {
		extra = append(extra, rush.ID)
	}

	catalog, ids, duration, client, err := u.matchingContext(ctx, actor, req.ClientID, req.ServiceIDs, req.Location.City, extra...)
	if err != nil {
		return response.FlashResult{}, err
	}

	now := u.now().In(u.settings.Location)
	photographers, err := u.repo.FindActivePhotographers(ctx)
	if err != nil {
		return response.FlashResult{}, err
	}
	agendas, err := u.dayAgendas(ctx, now)
	if err != nil {
		return response.FlashResult{}, err
	}

	matcher := engine.NewMatcher(u.calendar, catalog)
	site := entity.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng}
	out := response.FlashResult{ServiceIDs: ids, DurationMinutes: duration}
	match, ok := matcher.FindNearestAvailable(photographers, agendas, matcher.RouteLocation(site, client, ids), ids, duration, client, now)
	if !ok {
		return out, nil
	}

	out.Found = true
	out.PhotographerID = match.PhotographerID
	out.Date = match.Date.Format(helpers.DateLayout)
	out.Slot = match.Slot
	out.DistanceKm = match.DistanceKm
	return out, nil
}

// today is midnight of the current day in the engine location.
func (u *usecase) today() time.Time {
	return u.calendar.Day(u.now().In(u.settings.Location))
}
