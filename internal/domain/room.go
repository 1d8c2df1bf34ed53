package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "casarural/internal/errors"
)

// Room is a unit of lodging offered by the house. Availability is a manual
// flag: creating a reservation never toggles it and no overlap detection
// exists, so the catalog only uses it to filter the rooms it offers.
type Room struct {
	ID           uuid.UUID
	Code         string
	Description  string
	Capacity     int
	NightlyPrice decimal.Decimal
	Available    bool
}

func NewRoom(code, description string, capacity int, nightlyPrice decimal.Decimal) (*Room, error) {
	r := &Room{
		ID:          uuid.New(),
		Code:        code,
		Description: description,
		Capacity:    capacity,
		Available:   true,
	}
	if err := r.SetNightlyPrice(nightlyPrice); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRoom returns a placeholder room. This is the only path that leaves
// the nightly price at zero; any later change must go through
// SetNightlyPrice.
func DefaultRoom() *Room {
	return &Room{
		ID:           uuid.New(),
		Code:         "H001",
		Description:  "Habitacion 1",
		Capacity:     1,
		NightlyPrice: decimal.Zero,
		Available:    true,
	}
}

func (r *Room) SetNightlyPrice(price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return apperrors.NewInvalidAmountError("nightly price must be greater than zero: " + price.String())
	}
	r.NightlyPrice = price
	return nil
}
