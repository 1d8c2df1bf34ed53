package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"casarural/internal/domain"
)

// Seed replaces the catalog state with the demo dataset: two rooms, one
// client and one confirmed, card-paid reservation. The reservation dates are
// fixed in the past, so it is rehydrated the same way a snapshot is instead
// of going through creation-time validation.
func (c *Catalog) Seed() error {
	house := domain.House{
		ID:      uuid.New(),
		Name:    "Casa Rural Los Alamos",
		Address: "Calle Principal 123, Pueblo Viejo",
		Phone:   "912345678",
	}

	double, err := domain.NewRoom("H001", "Habitacion Doble Estandar", 2, decimal.RequireFromString("45.00"))
	if err != nil {
		return err
	}
	triple, err := domain.NewRoom("H002", "Habitacion Triple con Terraza", 3, decimal.RequireFromString("65.00"))
	if err != nil {
		return err
	}

	client := domain.NewClient("Maria Garcia Lopez", "12345678A", "maria.garcia@email.com", "611223344")

	start := time.Date(2025, time.December, 20, 15, 0, 0, 0, time.Local)
	end := time.Date(2025, time.December, 22, 11, 0, 0, 0, time.Local)
	total := double.NightlyPrice.Mul(decimal.NewFromInt(int64(domain.NightsBetween(start, end))))

	res := domain.RehydrateReservation(uuid.New(), client.ID, double.ID, start, end, total, domain.StatusConfirmed, nil)
	payment := domain.NewCardPayment(total, "Tarjeta", client.FullName, "4111111111111111", "123", "12/28")
	if err := res.AttachPayment(payment); err != nil {
		return err
	}

	c.house = house
	c.rooms = []*domain.Room{double, triple}
	c.clients = []*domain.Client{client}
	c.reservations = []*domain.Reservation{res}

	c.logger.Info("seed data created",
		zap.String("house", house.Name),
		zap.Int("rooms", len(c.rooms)),
		zap.Int("clients", len(c.clients)),
		zap.Int("reservations", len(c.reservations)))
	return nil
}
