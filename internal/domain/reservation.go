package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "casarural/internal/errors"
)

// cardTolerance is the one-cent slack allowed when matching a card payment
// against the reservation total.
var cardTolerance = decimal.New(1, -2)

// Reservation binds a client and a room to a date range, a price, a status
// and at most one payment. Client and room are referenced by ID, never
// embedded. Every constructor and mutating method re-validates the
// invariants it touches, so a failed call leaves the reservation unchanged.
type Reservation struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	RoomID     uuid.UUID
	Start      time.Time
	End        time.Time
	Nights     int
	TotalPrice decimal.Decimal
	Status     ReservationStatus
	Payment    Payment
}

func NewReservation(clientID, roomID uuid.UUID, start, end time.Time, totalPrice decimal.Decimal) (*Reservation, error) {
	return NewReservationWithStatus(clientID, roomID, start, end, totalPrice, StatusPending)
}

func NewReservationWithStatus(clientID, roomID uuid.UUID, start, end time.Time, totalPrice decimal.Decimal, status ReservationStatus) (*Reservation, error) {
	if err := ValidateDates(start, end); err != nil {
		return nil, err
	}
	if totalPrice.Sign() < 0 {
		return nil, apperrors.NewInvalidAmountError("total price cannot be negative: " + totalPrice.String())
	}
	if !status.Valid() {
		return nil, apperrors.NewInvalidTransitionError("unknown reservation status: " + string(status))
	}
	return &Reservation{
		ID:         uuid.New(),
		ClientID:   clientID,
		RoomID:     roomID,
		Start:      start,
		End:        end,
		Nights:     NightsBetween(start, end),
		TotalPrice: totalPrice,
		Status:     status,
	}, nil
}

func NewReservationWithPayment(clientID, roomID uuid.UUID, start, end time.Time, totalPrice decimal.Decimal, status ReservationStatus, payment Payment) (*Reservation, error) {
	r, err := NewReservationWithStatus(clientID, roomID, start, end, totalPrice, status)
	if err != nil {
		return nil, err
	}
	r.Payment = payment
	return r, nil
}

// RehydrateReservation rebuilds a reservation from stored fields. It skips
// the creation-time date check so historical stays load unchanged; nights
// are still recomputed from the dates.
func RehydrateReservation(id, clientID, roomID uuid.UUID, start, end time.Time, totalPrice decimal.Decimal, status ReservationStatus, payment Payment) *Reservation {
	return &Reservation{
		ID:         id,
		ClientID:   clientID,
		RoomID:     roomID,
		Start:      start,
		End:        end,
		Nights:     NightsBetween(start, end),
		TotalPrice: totalPrice,
		Status:     status,
		Payment:    payment,
	}
}

func (r *Reservation) SetStart(start time.Time) error {
	if err := ValidateDates(start, r.End); err != nil {
		return err
	}
	r.Start = start
	r.Nights = NightsBetween(r.Start, r.End)
	return nil
}

func (r *Reservation) SetEnd(end time.Time) error {
	if err := ValidateDates(r.Start, end); err != nil {
		return err
	}
	r.End = end
	r.Nights = NightsBetween(r.Start, r.End)
	return nil
}

func (r *Reservation) SetTotalPrice(totalPrice decimal.Decimal) error {
	if totalPrice.Sign() < 0 {
		return apperrors.NewInvalidAmountError("total price cannot be negative: " + totalPrice.String())
	}
	r.TotalPrice = totalPrice
	return nil
}

// ChangeStatus applies the transition rule. A plain status change has no
// other side effects.
func (r *Reservation) ChangeStatus(requested ReservationStatus) error {
	next, err := nextStatus(r.Status, requested)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

// AttachPayment validates the payment against the reservation and attaches
// it. A PENDING reservation is promoted to CONFIRMED on success; nothing is
// mutated on failure.
func (r *Reservation) AttachPayment(p Payment) error {
	if p == nil {
		return apperrors.NewInvalidPaymentError("payment is required")
	}
	if r.Payment != nil {
		return apperrors.NewInvalidPaymentError("reservation already has a payment attached")
	}
	if r.Status.Terminal() {
		return apperrors.NewInvalidPaymentError("cannot attach a payment to a " + strings.ToLower(string(r.Status)) + " reservation")
	}
	if err := matchAmount(p.Info().Method, p.Info().Amount, r.TotalPrice); err != nil {
		return err
	}
	r.Payment = p
	if r.Status == StatusPending {
		r.Status = StatusConfirmed
	}
	return nil
}

// DetachPayment clears the payment. A CONFIRMED reservation is moved back to
// PENDING through the transition rule; if that move is rejected the detach
// still stands and the rejection is returned for the caller to report.
func (r *Reservation) DetachPayment() error {
	r.Payment = nil
	if r.Status == StatusConfirmed {
		return r.ChangeStatus(StatusPending)
	}
	return nil
}

// matchAmount applies the per-method tolerance policy. Dispatch is a
// case-insensitive substring match on the free-text method label, not on the
// variant type: an unrecognized label settles like cash.
func matchAmount(method string, amount, total decimal.Decimal) error {
	label := strings.ToLower(method)
	switch {
	case strings.Contains(label, "efectivo"):
		// Overpayment is fine, it just produces change.
		if amount.LessThan(total) {
			return apperrors.NewInvalidAmountError(
				"cash payment of " + amount.String() + " is below reservation total " + total.String())
		}
	case strings.Contains(label, "tarjeta"), strings.Contains(label, "credito"), strings.Contains(label, "debito"):
		if amount.Sub(total).Abs().GreaterThan(cardTolerance) {
			return apperrors.NewInvalidAmountError(
				"card payment of " + amount.String() + " does not match reservation total " + total.String())
		}
	default:
		// Unrecognized labels settle like cash.
		if amount.LessThan(total) {
			return apperrors.NewInvalidAmountError(
				"payment of " + amount.String() + " is below reservation total " + total.String())
		}
	}
	return nil
}
