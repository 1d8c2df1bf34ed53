package catalog

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
)

// CreateReservation resolves the client and room references, validates the
// dates, prices the stay and stores a PENDING reservation. Room availability
// is not touched and overlapping stays for the same room are not detected.
func (c *Catalog) CreateReservation(clientID, roomID uuid.UUID, start, end time.Time) (*domain.Reservation, error) {
	client, err := c.ClientByID(clientID)
	if err != nil {
		return nil, err
	}
	room, err := c.RoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateDates(start, end); err != nil {
		return nil, err
	}

	total, err := domain.ComputePrice(room, start, end)
	if err != nil {
		return nil, err
	}

	res, err := domain.NewReservation(client.ID, room.ID, start, end, total)
	if err != nil {
		return nil, err
	}

	c.reservations = append(c.reservations, res)
	c.logger.Info("reservation created",
		zap.String("reservationId", res.ID.String()),
		zap.String("clientId", client.ID.String()),
		zap.String("room", room.Code),
		zap.Int("nights", res.Nights),
		zap.String("totalPrice", res.TotalPrice.String()))
	return res, nil
}

func (c *Catalog) Reservations() []*domain.Reservation { return c.reservations }

// UnpaidReservations lists reservations with no payment attached, the set a
// payment can be taken for.
func (c *Catalog) UnpaidReservations() []*domain.Reservation {
	unpaid := []*domain.Reservation{}
	for _, res := range c.reservations {
		if res.Payment == nil {
			unpaid = append(unpaid, res)
		}
	}
	return unpaid
}

// PaidReservations lists reservations holding a payment, the set a payment
// can be voided on.
func (c *Catalog) PaidReservations() []*domain.Reservation {
	paid := []*domain.Reservation{}
	for _, res := range c.reservations {
		if res.Payment != nil {
			paid = append(paid, res)
		}
	}
	return paid
}

func (c *Catalog) ReservationByID(id uuid.UUID) (*domain.Reservation, error) {
	for _, res := range c.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, apperrors.NewNotFoundError("reservation not found")
}

func (c *Catalog) ChangeReservationStatus(id uuid.UUID, status domain.ReservationStatus) error {
	res, err := c.ReservationByID(id)
	if err != nil {
		return err
	}

	if err := res.ChangeStatus(status); err != nil {
		return err
	}
	c.logger.Info("reservation status changed",
		zap.String("reservationId", res.ID.String()),
		zap.String("status", string(res.Status)))
	return nil
}

func (c *Catalog) AttachPayment(id uuid.UUID, payment domain.Payment) error {
	res, err := c.ReservationByID(id)
	if err != nil {
		return err
	}

	if err := res.AttachPayment(payment); err != nil {
		return err
	}
	c.logger.Info("payment attached",
		zap.String("reservationId", res.ID.String()),
		zap.String("method", payment.Info().Method),
		zap.String("amount", payment.Info().Amount.String()),
		zap.String("status", string(res.Status)))
	return nil
}

// VoidPayment detaches the payment from a reservation. When the reservation
// was CONFIRMED it is moved back to PENDING; if that transition is rejected
// the rejection is logged and the void still stands.
func (c *Catalog) VoidPayment(id uuid.UUID) error {
	res, err := c.ReservationByID(id)
	if err != nil {
		return err
	}
	if res.Payment == nil {
		return apperrors.NewInvalidPaymentError("reservation has no payment attached")
	}

	if err := res.DetachPayment(); err != nil {
		c.logger.Warn("payment voided but status not moved back to PENDING",
			zap.String("reservationId", res.ID.String()),
			zap.String("status", string(res.Status)),
			zap.Error(err))
		return nil
	}
	c.logger.Info("payment voided",
		zap.String("reservationId", res.ID.String()),
		zap.String("status", string(res.Status)))
	return nil
}
