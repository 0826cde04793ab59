package engine

import (
	"fmt"
	"time"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleEditor       Role = "editor"
	RoleClient       Role = "client"
	RoleBroker       Role = "broker"
	RolePhotographer Role = "photographer"
	// RoleSystem drives transitions caused by payment events.
	RoleSystem Role = "system"
)

type Actor struct {
	ID   string
	Role Role
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.Role, a.ID)
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleEditor || a.Role == RoleSystem
}

type Action string

const (
	ActionCreate           Action = "create"
	ActionScheduleDraft    Action = "schedule_draft"
	ActionReschedule       Action = "reschedule"
	ActionEditServices     Action = "edit_services"
	ActionConfirm          Action = "confirm"
	ActionPaymentConfirmed Action = "payment_confirmed"
	ActionComplete         Action = "complete"
	ActionDeliver          Action = "deliver"
	ActionCancel           Action = "cancel"
	ActionForceStatus      Action = "force_status"
	ActionTip              Action = "tip"
	ActionKeyState         Action = "key_state"
)

type rule struct {
	from []entity.Status
	// to is empty when the action keeps the status.
	to entity.Status
}

var rules = map[Action]rule{
	ActionScheduleDraft:    {from: []entity.Status{entity.StatusDraft}},
	ActionReschedule:       {from: []entity.Status{entity.StatusPending, entity.StatusConfirmed}},
	ActionEditServices:     {from: []entity.Status{entity.StatusDraft, entity.StatusPending, entity.StatusConfirmed}},
	ActionConfirm:          {from: []entity.Status{entity.StatusPending}, to: entity.StatusConfirmed},
	ActionPaymentConfirmed: {from: []entity.Status{entity.StatusPending}, to: entity.StatusConfirmed},
	ActionComplete:         {from: []entity.Status{entity.StatusConfirmed}, to: entity.StatusDone},
	ActionDeliver:          {from: []entity.Status{entity.StatusDone}, to: entity.StatusDelivered},
	ActionCancel:           {from: []entity.Status{entity.StatusPending, entity.StatusConfirmed}, to: entity.StatusCancelled},
	ActionTip:              {from: []entity.Status{entity.StatusConfirmed, entity.StatusDone, entity.StatusDelivered}},
	ActionKeyState:         {from: []entity.Status{entity.StatusPending, entity.StatusConfirmed, entity.StatusDone}},
}

// clientActions are the actions a client or broker may take on their own bookings.
var clientActions = map[Action]bool{
	ActionCreate:        true,
	ActionScheduleDraft: true,
	ActionReschedule:    true,
	ActionEditServices:  true,
	ActionCancel:        true,
	ActionTip:           true,
}

// futureOnly actions need the session to still be ahead when a client or broker triggers them.
var futureOnly = map[Action]bool{
	ActionReschedule:   true,
	ActionEditServices: true,
	ActionCancel:       true,
}

// Event is emitted after every committed transition.
type Event struct {
	BookingID string        `json:"booking_id"`
	Action    Action        `json:"action"`
	From      entity.Status `json:"from"`
	To        entity.Status `json:"to"`
	Actor     string        `json:"actor"`
	At        time.Time     `json:"at"`
}

type Lifecycle struct {
	calendar Calendar
}

func NewLifecycle(calendar Calendar) Lifecycle {
	return Lifecycle{calendar: calendar}
}

// Next returns the status booking moves to under action, or a ConflictError when
// action is not allowed from the current status.
func (l Lifecycle) Next(action Action, from entity.Status) (entity.Status, error) {
	r, ok := rules[action]
	if !ok {
		return "", errors.ValidationError(fmt.Sprintf("unknown action %q", action))
	}
	for _, s := range r.from {
		if s == from {
			if r.to == "" {
				return from, nil
			}
			return r.to, nil
		}
	}
	return "", errors.ConflictError(fmt.Sprintf("cannot %s a booking in status %s", action, from))
}

// StartsAt is the instant the session begins, false for drafts.
func (l Lifecycle) StartsAt(b entity.Booking) (time.Time, bool) {
	if !b.Date.Valid || !b.StartTime.Valid {
		return time.Time{}, false
	}
	m, err := ParseClock(b.StartTime.String)
	if err != nil {
		return time.Time{}, false
	}
	return l.calendar.At(b.Date.Time, m), true
}

func owns(actor Actor, b entity.Booking) bool {
	switch actor.Role {
	case RoleClient:
		return b.ClientID == actor.ID
	case RoleBroker:
		return b.BrokerID.Valid && b.BrokerID.String == actor.ID
	case RolePhotographer:
		return b.PhotographerID.Valid && b.PhotographerID.String == actor.ID
	}
	return false
}

// Authorize checks that actor may trigger action on b at now.
func (l Lifecycle) Authorize(actor Actor, b entity.Booking, action Action, now time.Time) error {
	if actor.IsStaff() {
		return nil
	}
	if action == ActionForceStatus || action == ActionConfirm || action == ActionDeliver || action == ActionPaymentConfirmed {
		return errors.AuthorizationError(fmt.Sprintf("%s may not %s bookings", actor.Role, action))
	}

	switch actor.Role {
	case RoleClient, RoleBroker:
		if !clientActions[action] {
			return errors.AuthorizationError(fmt.Sprintf("%s may not %s bookings", actor.Role, action))
		}
		if !owns(actor, b) {
			return errors.AuthorizationError("booking belongs to another client")
		}
		if futureOnly[action] {
			if b.Status.IsTerminal() {
				return errors.AuthorizationError(fmt.Sprintf("booking in status %s can no longer be changed", b.Status))
			}
			if start, ok := l.StartsAt(b); ok && !start.After(now) {
				return errors.AuthorizationError("booking already started")
			}
		}
		return nil
	case RolePhotographer:
		if action != ActionComplete && action != ActionKeyState {
			return errors.AuthorizationError(fmt.Sprintf("photographer may not %s bookings", action))
		}
		if !owns(actor, b) {
			return errors.AuthorizationError("booking is assigned to another photographer")
		}
		return nil
	}
	return errors.AuthorizationError(fmt.Sprintf("unknown role %q", actor.Role))
}

// Transition authorizes and applies action to b, appending history. It returns the event to publish.
func (l Lifecycle) Transition(b *entity.Booking, actor Actor, action Action, note string, now time.Time) (Event, error) {
	if err := l.Authorize(actor, *b, action, now); err != nil {
		return Event{}, err
	}
	to, err := l.Next(action, b.Status)
	if err != nil {
		return Event{}, err
	}
	ev := Event{BookingID: b.ID, Action: action, From: b.Status, To: to, Actor: actor.String(), At: now}
	b.Status = to
	b.AppendHistory(now, actor.String(), note)
	return ev, nil
}

// ForceStatus sets any status on behalf of staff.
func (l Lifecycle) ForceStatus(b *entity.Booking, actor Actor, to entity.Status, now time.Time) (Event, error) {
	if err := l.Authorize(actor, *b, ActionForceStatus, now); err != nil {
		return Event{}, err
	}
	if !ValidStatus(to) {
		return Event{}, errors.ValidationError(fmt.Sprintf("unknown status %q", to))
	}
	ev := Event{BookingID: b.ID, Action: ActionForceStatus, From: b.Status, To: to, Actor: actor.String(), At: now}
	b.AppendHistory(now, actor.String(), fmt.Sprintf("status forced from %s to %s", b.Status, to))
	b.Status = to
	return ev, nil
}

func ValidStatus(s entity.Status) bool {
	switch s {
	case entity.StatusDraft, entity.StatusPending, entity.StatusConfirmed,
		entity.StatusDone, entity.StatusDelivered, entity.StatusCancelled:
		return true
	}
	return false
}
