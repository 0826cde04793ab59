package engine

import (
	"sort"
	"time"

	"booking-engine/internal/module/booking/models/entity"
)

// Job describes what has to be photographed, where and when.
type Job struct {
	Location        entity.Coordinate
	ServiceIDs      []string
	Date            time.Time
	DurationMinutes int
	// BypassRadius schedules outside the photographers' normal coverage.
	BypassRadius bool
	Client       *entity.Client
}

type Candidate struct {
	Photographer entity.Photographer
	DistanceKm   float64
	Slots        []string
}

type FlashMatch struct {
	PhotographerID string
	Date           time.Time
	Slot           string
	DistanceKm     float64
}

type Matcher struct {
	calendar Calendar
	catalog  Catalog
}

func NewMatcher(calendar Calendar, catalog Catalog) Matcher {
	return Matcher{calendar: calendar, catalog: catalog}
}

// RouteLocation returns where matching measures distance from: the client's office
// when a key-pickup service is selected, the job site otherwise.
func (m Matcher) RouteLocation(site entity.Coordinate, client *entity.Client, serviceIDs []string) entity.Coordinate {
	if client != nil && m.catalog.HasKind(serviceIDs, entity.ServiceKeyPickup) {
		return client.Office()
	}
	return site
}

// Eligible applies the static predicate: active, in radius (unless bypassed), not
// blocked by the client and offering every client-selectable service of the job.
func (m Matcher) Eligible(p entity.Photographer, location entity.Coordinate, serviceIDs []string, client *entity.Client, bypassRadius bool) (float64, bool) {
	if !p.IsActive {
		return 0, false
	}
	distance := DistanceKm(location, p.Base())
	if !bypassRadius && distance > p.RadiusKm {
		return distance, false
	}
	if client != nil && client.BlockedPhotographers.Contains(p.ID) {
		return distance, false
	}
	for _, id := range serviceIDs {
		s, ok := m.catalog.Services[id]
		if ok && s.IsSystemManaged {
			continue
		}
		if !p.EnabledServices.Contains(id) {
			return distance, false
		}
	}
	return distance, true
}

// FindEligiblePhotographers lists eligible photographers with at least one free slot
// of the job duration on the job date, nearest first.
func (m Matcher) FindEligiblePhotographers(photographers []entity.Photographer, agendas map[string]Agenda, job Job) []Candidate {
	candidates := []Candidate{}
	for _, p := range photographers {
		distance, ok := m.Eligible(p, job.Location, job.ServiceIDs, job.Client, job.BypassRadius)
		if !ok {
			continue
		}
		slots := m.calendar.AvailableSlots(p, agendas[p.ID], job.Date, job.DurationMinutes, "")
		if len(slots) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{Photographer: p, DistanceKm: distance, Slots: slots})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].Photographer.ID < candidates[j].Photographer.ID
	})
	return candidates
}

// FindNearestAvailable picks, for today, the photographer whose soonest free slot
// at or after now is earliest; ties go to the shorter distance. The radius is never bypassed.
func (m Matcher) FindNearestAvailable(photographers []entity.Photographer, agendas map[string]Agenda, location entity.Coordinate, serviceIDs []string, durationMinutes int, client *entity.Client, now time.Time) (FlashMatch, bool) {
	var (
		best      FlashMatch
		bestStart int
		found     bool
	)
	for _, p := range photographers {
		distance, ok := m.Eligible(p, location, serviceIDs, client, false)
		if !ok {
			continue
		}
		slot, ok := m.calendar.SoonestSlot(p, agendas[p.ID], now, durationMinutes)
		if !ok {
			continue
		}
		start, _ := ParseClock(slot)
		better := !found ||
			start < bestStart ||
			(start == bestStart && distance < best.DistanceKm) ||
			(start == bestStart && distance == best.DistanceKm && p.ID < best.PhotographerID)
		if better {
			best = FlashMatch{PhotographerID: p.ID, Date: m.calendar.Day(now.In(m.calendar.Location())), Slot: slot, DistanceKm: distance}
			bestStart = start
			found = true
		}
	}
	return best, found
}
