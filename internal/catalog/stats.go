package catalog

import (
	"github.com/shopspring/decimal"

	"casarural/internal/domain"
)

// Stats is a point-in-time summary of the catalog.
type Stats struct {
	Rooms          int
	AvailableRooms int
	Clients        int
	Reservations   int
	ByStatus       map[domain.ReservationStatus]int
	// Revenue sums the totals of confirmed and completed reservations.
	Revenue decimal.Decimal
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Rooms:    len(c.rooms),
		Clients:  len(c.clients),
		ByStatus: map[domain.ReservationStatus]int{},
		Revenue:  decimal.Zero,
	}
	for _, room := range c.rooms {
		if room.Available {
			s.AvailableRooms++
		}
	}
	s.Reservations = len(c.reservations)
	for _, res := range c.reservations {
		s.ByStatus[res.Status]++
		if res.Status == domain.StatusConfirmed || res.Status == domain.StatusCompleted {
			s.Revenue = s.Revenue.Add(res.TotalPrice)
		}
	}
	return s
}
