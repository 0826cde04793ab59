package engine

import (
	"fmt"

	"booking-engine/internal/module/booking/models/entity"
	"booking-engine/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

// Ledger holds the pre-paid wallet rules. Limit is how far below zero a balance may go.
type Ledger struct {
	limit decimal.Decimal
}

func NewLedger(negativeBalanceLimit decimal.Decimal) Ledger {
	return Ledger{limit: negativeBalanceLimit.Abs()}
}

func (l Ledger) Limit() decimal.Decimal {
	return l.limit
}

func (l Ledger) Floor() decimal.Decimal {
	return l.limit.Neg()
}

// ProjectedBalance is balance after paying amountDue.
func (l Ledger) ProjectedBalance(balance, amountDue decimal.Decimal) decimal.Decimal {
	return balance.Sub(amountDue)
}

// CanDebit reports whether debiting amount keeps balance at or above the floor.
func (l Ledger) CanDebit(balance, amount decimal.Decimal) bool {
	return balance.Sub(amount).GreaterThanOrEqual(l.Floor())
}

// Outcome is the wallet decision for a booking that is about to be scheduled.
type Outcome struct {
	Status entity.Status
	// Debit is taken from the wallet now.
	Debit decimal.Decimal
	// Deficit is what an external payment must cover before confirmation.
	Deficit decimal.Decimal
}

func (o Outcome) AwaitsPayment() bool {
	return o.Status == entity.StatusPending
}

// Decide picks the payment path for amountDue against balance.
func (l Ledger) Decide(balance, amountDue decimal.Decimal, choice entity.PaymentChoice) (Outcome, error) {
	if amountDue.IsNegative() {
		return Outcome{}, errors.ValidationError("amount due cannot be negative")
	}
	if amountDue.IsZero() || balance.GreaterThanOrEqual(amountDue) {
		return Outcome{Status: entity.StatusConfirmed, Debit: amountDue, Deficit: decimal.Zero}, nil
	}

	deficit := amountDue.Sub(balance)
	switch choice {
	case entity.PaymentPayNow:
		return Outcome{Status: entity.StatusPending, Debit: decimal.Zero, Deficit: deficit}, nil
	case entity.PaymentPayLater:
		if !l.CanDebit(balance, amountDue) {
			return Outcome{}, errors.ConflictError(fmt.Sprintf(
				"wallet limit exceeded: projected balance %s is below -%s",
				l.ProjectedBalance(balance, amountDue).StringFixed(2), l.limit.StringFixed(2)))
		}
		return Outcome{Status: entity.StatusConfirmed, Debit: amountDue, Deficit: decimal.Zero}, nil
	default:
		return Outcome{}, errors.ConflictError(fmt.Sprintf(
			"insufficient balance: %s missing, choose pay_now or pay_later", deficit.StringFixed(2)))
	}
}

// ApplyDelta moves balance by a price delta: positive debits, negative credits back.
func (l Ledger) ApplyDelta(balance, delta decimal.Decimal) (decimal.Decimal, error) {
	if delta.IsPositive() && !l.CanDebit(balance, delta) {
		return balance, errors.ConflictError(fmt.Sprintf(
			"wallet limit exceeded: debit of %s would take the balance below -%s",
			delta.StringFixed(2), l.limit.StringFixed(2)))
	}
	return balance.Sub(delta), nil
}

// Credit adds amount to balance.
func (l Ledger) Credit(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return balance, errors.ValidationError("credit amount must be positive")
	}
	return balance.Add(amount), nil
}
