package entity

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// JSON-backed column types. Each one is stored as jsonb.

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// valueJSON encodes v as text; lib/pq would send a []byte as bytea.
func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// WeeklyAvailability maps a weekday to its ordered candidate start times ("HH:MM").
type WeeklyAvailability map[time.Weekday][]string

func (w WeeklyAvailability) Value() (driver.Value, error) {
	if w == nil {
		return "{}", nil
	}
	return valueJSON(map[time.Weekday][]string(w))
}

func (w *WeeklyAvailability) Scan(src interface{}) error {
	*w = WeeklyAvailability{}
	return scanJSON(src, w)
}

// StringSet is an ordered list of unique ids.
type StringSet []string

func NewStringSet(ids ...string) StringSet {
	seen := make(map[string]struct{}, len(ids))
	out := make(StringSet, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s StringSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return valueJSON([]string(s))
}

func (s *StringSet) Scan(src interface{}) error {
	*s = StringSet{}
	return scanJSON(src, (*[]string)(s))
}

// PriceTable maps a service id to a price.
type PriceTable map[string]decimal.Decimal

// Lookup returns the price for id and whether one is defined.
func (p PriceTable) Lookup(id string) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}
	v, ok := p[id]
	return v, ok
}

func (p PriceTable) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	return valueJSON(map[string]decimal.Decimal(p))
}

func (p *PriceTable) Scan(src interface{}) error {
	*p = PriceTable{}
	return scanJSON(src, (*map[string]decimal.Decimal)(p))
}

type HistoryLog []HistoryEntry

func (h HistoryLog) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	return valueJSON([]HistoryEntry(h))
}

func (h *HistoryLog) Scan(src interface{}) error {
	*h = HistoryLog{}
	return scanJSON(src, (*[]HistoryEntry)(h))
}

func (c CancelReason) Value() (driver.Value, error) {
	return valueJSON(c)
}

func (c *CancelReason) Scan(src interface{}) error {
	*c = CancelReason{}
	return scanJSON(src, c)
}

// NormalizeSlots sorts "HH:MM" values ascending and drops duplicates.
func NormalizeSlots(slots []string) []string {
	out := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	// zero-padded HH:MM sorts lexically
	sort.Strings(out)
	return out
}
