package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	apperrors "casarural/internal/errors"
)

// ValidateDates checks a reservation date pair: both dates present, the end
// strictly after the start, and the start not before the current moment.
func ValidateDates(start, end time.Time) error {
	if start.IsZero() {
		return apperrors.NewInvalidDatesError("start date is required")
	}
	if end.IsZero() {
		return apperrors.NewInvalidDatesError("end date is required")
	}
	if !end.After(start) {
		return apperrors.NewInvalidDatesError("end date must be after start date")
	}
	if start.Before(time.Now()) {
		return apperrors.NewInvalidDatesError("start date cannot be in the past")
	}
	return nil
}

// NightsBetween counts whole calendar days between the two dates' calendar
// dates. Time of day is ignored: a Friday-evening to Sunday-morning stay is
// two nights.
func NightsBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	// Rounding absorbs the odd hour a DST change adds or removes.
	return int(math.Round(e.Sub(s).Hours() / 24))
}

// ComputePrice prices a stay as nightly price times nights. A same-day pair
// with different times prices to zero; date validation is the caller's
// concern.
func ComputePrice(room *Room, start, end time.Time) (decimal.Decimal, error) {
	if room == nil {
		return decimal.Decimal{}, apperrors.NewValidationError("room is required to price a stay")
	}
	if start.IsZero() || end.IsZero() {
		return decimal.Decimal{}, apperrors.NewInvalidDatesError("both dates are required to price a stay")
	}
	if room.NightlyPrice.Sign() <= 0 {
		return decimal.Decimal{}, apperrors.NewInvalidAmountError("nightly price must be greater than zero: " + room.NightlyPrice.String())
	}
	nights := decimal.NewFromInt(int64(NightsBetween(start, end)))
	return room.NightlyPrice.Mul(nights), nil
}
