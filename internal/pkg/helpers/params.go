package helpers

import (
	"strconv"
	"time"

	"booking-engine/internal/pkg/errors"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, errors.ValidationError("invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

func ParsePositiveInt(value, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, errors.ValidationError(field + " must be a positive integer")
	}
	return n, nil
}
