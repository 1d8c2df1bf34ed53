package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "casarural/internal/errors"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom("H002", "Habitacion Triple con Terraza", 3, decimal.RequireFromString("65.00"))
	require.NoError(t, err)

	assert.NotEqual(t, "", room.ID.String())
	assert.Equal(t, "H002", room.Code)
	assert.Equal(t, 3, room.Capacity)
	assert.Equal(t, "65.00", room.NightlyPrice.String())
	assert.True(t, room.Available)
}

func TestNewRoom_RejectsNonPositivePrice(t *testing.T) {
	_, err := NewRoom("H001", "Habitacion Doble Estandar", 2, decimal.Zero)
	_, ok := apperrors.IsInvalidAmountError(err)
	assert.True(t, ok)

	_, err = NewRoom("H001", "Habitacion Doble Estandar", 2, decimal.RequireFromString("-45.00"))
	_, ok = apperrors.IsInvalidAmountError(err)
	assert.True(t, ok)
}

func TestDefaultRoom_ZeroPriceAllowed(t *testing.T) {
	room := DefaultRoom()

	assert.True(t, room.NightlyPrice.IsZero())
	assert.True(t, room.Available)

	// Any later change still goes through the validating setter.
	err := room.SetNightlyPrice(decimal.Zero)
	_, ok := apperrors.IsInvalidAmountError(err)
	assert.True(t, ok)

	require.NoError(t, room.SetNightlyPrice(decimal.RequireFromString("45.00")))
	assert.Equal(t, "45.00", room.NightlyPrice.String())
}
