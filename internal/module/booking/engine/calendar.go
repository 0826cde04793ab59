package engine

import (
	"fmt"
	"time"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"
)

const minutesPerDay = 24 * 60

// DefaultDayTemplate is applied when a weekday is switched back on.
var DefaultDayTemplate = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// Agenda is what already occupies a photographer: bookings and time-off.
type Agenda struct {
	Bookings []entity.Booking
	TimeOffs []entity.TimeOff
}

// ParseClock parses "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 {
		return 0, errors.ValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.ValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// parseEndClock also accepts "24:00" for sessions ending at midnight.
func parseEndClock(s string) (int, error) {
	if s == "24:00" {
		return minutesPerDay, nil
	}
	return ParseClock(s)
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndClock returns start plus durationMinutes, rejecting schedules that cross midnight.
func EndClock(start string, durationMinutes int) (string, error) {
	if durationMinutes <= 0 {
		return "", errors.ValidationError("duration must be positive")
	}
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	end := m + durationMinutes
	if end > minutesPerDay {
		return "", errors.ValidationError(fmt.Sprintf("slot %s plus %d minutes crosses midnight", start, durationMinutes))
	}
	return FormatClock(end), nil
}

type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	return c.loc
}

// Day returns midnight of date's calendar day in the engine location.
func (c Calendar) Day(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

func (c Calendar) sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// At returns the instant of clock minutes on date.
func (c Calendar) At(date time.Time, minutes int) time.Time {
	return c.Day(date).Add(time.Duration(minutes) * time.Minute)
}

// Interval returns the instants a scheduled booking occupies.
func (c Calendar) Interval(b entity.Booking) (time.Time, time.Time, bool) {
	if !b.IsScheduled() {
		return time.Time{}, time.Time{}, false
	}
	start, err := ParseClock(b.StartTime.String)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := parseEndClock(b.EndTime.String)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return c.At(b.Date.Time, start), c.At(b.Date.Time, end), true
}

// CandidateSlots returns the weekday template for date. An unconfigured or cleared day has no slots.
func (c Calendar) CandidateSlots(p entity.Photographer, date time.Time) []string {
	slots := p.Availability[c.Day(date).Weekday()]
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// IsSlotFree reports whether [slot, slot+duration) is a template slot on date that
// overlaps neither a live booking nor an approved time-off.
func (c Calendar) IsSlotFree(p entity.Photographer, agenda Agenda, date time.Time, slot string, durationMinutes int, excludeBookingID string) bool {
	if durationMinutes <= 0 {
		return false
	}
	start, err := ParseClock(slot)
	if err != nil {
		return false
	}
	end := start + durationMinutes
	if end > minutesPerDay {
		return false
	}

	inTemplate := false
	for _, s := range c.CandidateSlots(p, date) {
		if s == slot {
			inTemplate = true
			break
		}
	}
	if !inTemplate {
		return false
	}

	return !c.Conflicts(p.ID, agenda, date, start, end, excludeBookingID)
}

// Conflicts reports whether the half-open interval [start, end) in minutes on date
// overlaps a booking or approved time-off of photographerID.
func (c Calendar) Conflicts(photographerID string, agenda Agenda, date time.Time, start, end int, excludeBookingID string) bool {
	for _, b := range agenda.Bookings {
		if b.Status == entity.StatusCancelled || !b.IsScheduled() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if b.PhotographerID.Valid && b.PhotographerID.String != photographerID {
			continue
		}
		if !c.sameDay(b.Date.Time, date) {
			continue
		}
		bs, err := ParseClock(b.StartTime.String)
		if err != nil {
			continue
		}
		be, err := parseEndClock(b.EndTime.String)
		if err != nil {
			continue
		}
		if start < be && bs < end {
			return true
		}
	}

	slotStart := c.At(date, start)
	slotEnd := c.At(date, end)
	for _, t := range agenda.TimeOffs {
		if !t.Approved || t.PhotographerID != photographerID {
			continue
		}
		if t.StartAt.Before(slotEnd) && slotStart.Before(t.EndAt) {
			return true
		}
	}
	return false
}

// AvailableSlots filters the day's candidate slots through IsSlotFree.
func (c Calendar) AvailableSlots(p entity.Photographer, agenda Agenda, date time.Time, durationMinutes int, excludeBookingID string) []string {
	free := []string{}
	for _, s := range c.CandidateSlots(p, date) {
		if c.IsSlotFree(p, agenda, date, s, durationMinutes, excludeBookingID) {
			free = append(free, s)
		}
	}
	return free
}

// SoonestSlot returns the first free slot of now's day starting strictly after now,
// the same cut a booking request for that slot is held to.
func (c Calendar) SoonestSlot(p entity.Photographer, agenda Agenda, now time.Time, durationMinutes int) (string, bool) {
	local := now.In(c.loc)
	for _, s := range c.CandidateSlots(p, local) {
		m, err := ParseClock(s)
		if err != nil || !c.At(local, m).After(now) {
			continue
		}
		if c.IsSlotFree(p, agenda, local, s, durationMinutes, "") {
			return s, true
		}
	}
	return "", false
}

// SetDaySlots replaces a weekday template with the normalized slots.
func SetDaySlots(p *entity.Photographer, day time.Weekday, slots []string) error {
	for _, s := range slots {
		if _, err := ParseClock(s); err != nil {
			return err
		}
	}
	if p.Availability == nil {
		p.Availability = entity.WeeklyAvailability{}
	}
	p.Availability[day] = entity.NormalizeSlots(slots)
	return nil
}

// ClearDay switches a weekday off by dropping its slot list entirely.
func ClearDay(p *entity.Photographer, day time.Weekday) {
	delete(p.Availability, day)
}

// EnableDay switches a weekday on with the default template.
func EnableDay(p *entity.Photographer, day time.Weekday) {
	_ = SetDaySlots(p, day, DefaultDayTemplate)
}
