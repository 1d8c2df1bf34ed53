package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "casarural/internal/errors"
)

func reservationInStatus(status ReservationStatus) *Reservation {
	start := time.Date(2025, time.December, 20, 15, 0, 0, 0, time.Local)
	end := time.Date(2025, time.December, 22, 11, 0, 0, 0, time.Local)
	return RehydrateReservation(uuid.New(), uuid.New(), uuid.New(), start, end,
		decimal.RequireFromString("90.00"), status, nil)
}

func TestChangeStatus_TransitionTable(t *testing.T) {
	cases := []struct {
		name      string
		current   ReservationStatus
		requested ReservationStatus
		wantErr   bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"cancelled is idempotent", StatusCancelled, StatusCancelled, false},
		{"cancelled to pending", StatusCancelled, StatusPending, true},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, true},
		{"cancelled to completed", StatusCancelled, StatusCompleted, true},
		{"completed to pending", StatusCompleted, StatusPending, true},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, true},
		{"completed to cancelled", StatusCompleted, StatusCancelled, true},
		{"completed to completed", StatusCompleted, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := reservationInStatus(tc.current)
			err := res.ChangeStatus(tc.requested)

			if tc.wantErr {
				_, ok := apperrors.IsInvalidTransitionError(err)
				assert.True(t, ok, "expected InvalidTransition, got %v", err)
				assert.Equal(t, tc.current, res.Status, "rejected transition must not mutate")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.requested, res.Status)
			}
		})
	}
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	res := reservationInStatus(StatusPending)

	err := res.ChangeStatus("")
	_, ok := apperrors.IsInvalidTransitionError(err)
	assert.True(t, ok)
	assert.Equal(t, StatusPending, res.Status)

	err = res.ChangeStatus("ARCHIVED")
	_, ok = apperrors.IsInvalidTransitionError(err)
	assert.True(t, ok)
	assert.Equal(t, StatusPending, res.Status)
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, ReservationStatus("").Valid())
	assert.False(t, ReservationStatus("ARCHIVED").Valid())
}
