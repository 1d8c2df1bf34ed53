package domain

import (
	apperrors "casarural/internal/errors"
)

// ReservationStatus is the lifecycle state of a reservation. CANCELLED and
// COMPLETED are terminal: the only transition allowed out of them is the
// idempotent re-cancel.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// nextStatus applies the transition rule and returns the status to assign.
// It never mutates anything, so a rejected transition leaves the caller
// untouched.
func nextStatus(current, requested ReservationStatus) (ReservationStatus, error) {
	if !requested.Valid() {
		return current, apperrors.NewInvalidTransitionError("unknown reservation status: " + string(requested))
	}
	if current == StatusCancelled && requested != StatusCancelled {
		return current, apperrors.NewInvalidTransitionError("a cancelled reservation cannot change status")
	}
	if current == StatusCompleted && requested != StatusCompleted {
		return current, apperrors.NewInvalidTransitionError("a completed reservation cannot change status")
	}
	// Redundant with the cancelled guard above; preserved for compatibility.
	if current == StatusCancelled && requested == StatusConfirmed {
		return current, apperrors.NewInvalidTransitionError("a cancelled reservation cannot be confirmed")
	}
	return requested, nil
}
