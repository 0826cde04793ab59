package usecases

import (
	"context"
	"time"

	"booking-engine/internal/module/booking/engine"
	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"
	"booking-engine/internal/pkg/lock"

	"github.com/google/uuid"
)

const timeOffLayout = "2006-01-02T15:04"

func canManage(actor engine.Actor, photographerID string) error {
	if actor.IsStaff() || (actor.Role == engine.RolePhotographer && actor.ID == photographerID) {
		return nil
	}
	return errors.AuthorizationError("only staff or the photographer may change this schedule")
}

func (u *usecase) UpdateAvailability(ctx context.Context, actor engine.Actor, photographerID string, req *request.DayAvailability) (response.Availability, error) {
	if err := canManage(actor, photographerID); err != nil {
		return response.Availability{}, err
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		return response.Availability{}, errors.ValidationError("weekday must be between 0 and 6")
	}

	p, err := u.repo.FindPhotographerByID(ctx, photographerID)
	if err != nil {
		return response.Availability{}, err
	}

	day := time.Weekday(req.Weekday)
	switch {
	case req.Enabled != nil && !*req.Enabled:
		engine.ClearDay(&p, day)
	case len(req.Slots) > 0:
		if err := engine.SetDaySlots(&p, day, req.Slots); err != nil {
			return response.Availability{}, err
		}
	case req.Enabled != nil:
		engine.EnableDay(&p, day)
	default:
		return response.Availability{}, errors.ValidationError("either enabled or slots must be given")
	}

	if err := u.repo.UpdatePhotographerAvailability(ctx, p.ID, p.Availability); err != nil {
		return response.Availability{}, err
	}
	u.invalidate(ctx, p.ID)
	return response.Availability{PhotographerID: p.ID, Availability: p.Availability}, nil
}

func (u *usecase) CreateTimeOff(ctx context.Context, actor engine.Actor, req *request.TimeOff) (response.TimeOff, error) {
	if err := canManage(actor, req.PhotographerID); err != nil {
		return response.TimeOff{}, err
	}
	start, err := time.ParseInLocation(timeOffLayout, req.StartAt, u.settings.Location)
	if err != nil {
		return response.TimeOff{}, errors.ValidationError("invalid start_at, expected YYYY-MM-DDTHH:MM")
	}
	end, err := time.ParseInLocation(timeOffLayout, req.EndAt, u.settings.Location)
	if err != nil {
		return response.TimeOff{}, errors.ValidationError("invalid end_at, expected YYYY-MM-DDTHH:MM")
	}
	if !end.After(start) {
		return response.TimeOff{}, errors.ValidationError("end_at must be after start_at")
	}

	if _, err := u.repo.FindPhotographerByID(ctx, req.PhotographerID); err != nil {
		return response.TimeOff{}, err
	}

	var keys []string
	for d := u.calendar.Day(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, lock.SlotKey(req.PhotographerID, d))
	}
	unlock, err := u.repo.Lock(ctx, keys...)
	if err != nil {
		return response.TimeOff{}, err
	}
	defer unlock()

	timeOff := entity.TimeOff{
		ID:             uuid.NewString(),
		PhotographerID: req.PhotographerID,
		StartAt:        start,
		EndAt:          end,
		Reason:         req.Reason,
		Approved:       true,
		CreatedAt:      u.now(),
	}
	err = u.repo.WithTransaction(ctx, func(ctx context.Context) error {
		bookings, err := u.repo.FindBookingsByPhotographerRange(ctx, req.PhotographerID, start, end)
		if err != nil {
			return err
		}
		for _, b := range bookings {
			if b.Status == entity.StatusCancelled {
				continue
			}
			from, to, ok := u.calendar.Interval(b)
			if ok && start.Before(to) && from.Before(end) {
				return errors.ConflictError("time off overlaps booking " + b.ID)
			}
		}
		return u.repo.InsertTimeOff(ctx, timeOff)
	})
	if err != nil {
		return response.TimeOff{}, err
	}

	u.invalidate(ctx, req.PhotographerID)
	return response.TimeOff{
		ID:             timeOff.ID,
		PhotographerID: timeOff.PhotographerID,
		StartAt:        timeOff.StartAt,
		EndAt:          timeOff.EndAt,
		Reason:         timeOff.Reason,
		Approved:       timeOff.Approved,
	}, nil
}
