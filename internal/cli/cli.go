// Package cli is the interactive console surface. It only gathers input,
// prints results and reports errors; every decision lives in the catalog and
// the domain. A domain error never exits the process, the menu just
// re-prompts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"casarural/internal/catalog"
	"casarural/internal/domain"
	"casarural/internal/snapshot"
)

const dateLayout = "2006-01-02 15:04"

type CLI struct {
	catalog *catalog.Catalog
	store   *snapshot.Store
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

func New(cat *catalog.Catalog, store *snapshot.Store, logger *zap.Logger) *CLI {
	return &CLI{
		catalog: cat,
		store:   store,
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		logger:  logger,
	}
}

func (c *CLI) Run() {
	for {
		c.printf("\n==================================================\n")
		c.printf("CASA RURAL - MANAGEMENT\n")
		c.printf("==================================================\n")
		c.printf("1. Rooms\n")
		c.printf("2. Clients\n")
		c.printf("3. Reservations\n")
		c.printf("4. Payments\n")
		c.printf("5. Save data\n")
		c.printf("6. Create test data\n")
		c.printf("7. Statistics\n")
		c.printf("8. Exit\n")

		switch c.promptInt("Select an option: ") {
		case 1:
			c.roomsMenu()
		case 2:
			c.clientsMenu()
		case 3:
			c.reservationsMenu()
		case 4:
			c.paymentsMenu()
		case 5:
			c.save()
		case 6:
			c.seed()
		case 7:
			c.stats()
		case 8:
			c.printf("Goodbye!\n")
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *CLI) roomsMenu() {
	for {
		c.printf("\n--- ROOMS ---\n")
		c.printf("1. Add room\n")
		c.printf("2. List rooms\n")
		c.printf("3. Back\n")

		switch c.promptInt("Select an option: ") {
		case 1:
			c.addRoom()
		case 2:
			c.listRooms()
		case 3:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *CLI) addRoom() {
	input := catalog.RoomInput{
		Code:        c.prompt("Room code: "),
		Description: c.prompt("Description: "),
	}
	capacity, err := strconv.Atoi(c.prompt("Capacity (guests): "))
	if err != nil {
		c.printf("Capacity must be a whole number.\n")
		return
	}
	input.Capacity = capacity

	price, err := decimal.NewFromString(c.prompt("Nightly price: "))
	if err != nil {
		c.printf("Nightly price must be a number.\n")
		return
	}
	input.NightlyPrice = price

	room, err := c.catalog.AddRoom(input)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Room created: %s\n", room.Code)
}

func (c *CLI) listRooms() {
	rooms := c.catalog.Rooms()
	if len(rooms) == 0 {
		c.printf("No rooms registered.\n")
		return
	}
	house := c.catalog.House()
	c.printf("\n%s - %d room(s)\n", house.Name, len(rooms))
	for i, room := range rooms {
		state := "available"
		if !room.Available {
			state = "occupied"
		}
		c.printf("%d. %s - %s (capacity %d, %s/night, %s)\n",
			i+1, room.Code, room.Description, room.Capacity, room.NightlyPrice.StringFixed(2), state)
	}
}

func (c *CLI) clientsMenu() {
	for {
		c.printf("\n--- CLIENTS ---\n")
		c.printf("1. Register client\n")
		c.printf("2. List clients\n")
		c.printf("3. Remove client\n")
		c.printf("4. Back\n")

		switch c.promptInt("Select an option: ") {
		case 1:
			c.registerClient()
		case 2:
			c.listClients()
		case 3:
			c.removeClient()
		case 4:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *CLI) registerClient() {
	input := catalog.ClientInput{
		FullName:       c.prompt("Full name: "),
		DocumentNumber: c.prompt("Document number: "),
		Email:          c.prompt("Email: "),
		Phone:          c.prompt("Phone: "),
	}

	client, err := c.catalog.RegisterClient(input)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Client registered: %s\n", client.FullName)
}

func (c *CLI) listClients() {
	clients := c.catalog.Clients()
	if len(clients) == 0 {
		c.printf("No clients registered.\n")
		return
	}
	for i, client := range clients {
		c.printf("%d. %s (doc %s, %s, %s)\n",
			i+1, client.FullName, client.DocumentNumber, client.Email, client.Phone)
	}
}

func (c *CLI) removeClient() {
	clients := c.catalog.Clients()
	if len(clients) == 0 {
		c.printf("No clients registered.\n")
		return
	}
	c.listClients()
	idx := c.promptInt("Client number: ") - 1
	if idx < 0 || idx >= len(clients) {
		c.printf("Invalid client.\n")
		return
	}
	if err := c.catalog.RemoveClient(clients[idx].ID); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Client removed.\n")
}

func (c *CLI) reservationsMenu() {
	for {
		c.printf("\n--- RESERVATIONS ---\n")
		c.printf("1. Create reservation\n")
		c.printf("2. List reservations\n")
		c.printf("3. Change reservation status\n")
		c.printf("4. Back\n")

		switch c.promptInt("Select an option: ") {
		case 1:
			c.createReservation()
		case 2:
			c.listReservations(c.catalog.Reservations())
		case 3:
			c.changeReservationStatus()
		case 4:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *CLI) createReservation() {
	available := c.catalog.AvailableRooms()
	if len(available) == 0 {
		c.printf("No rooms available.\n")
		return
	}
	clients := c.catalog.Clients()
	if len(clients) == 0 {
		c.printf("No clients registered. Register a client first.\n")
		return
	}

	c.printf("\nSelect a client:\n")
	c.listClients()
	clientIdx := c.promptInt("Client number: ") - 1
	if clientIdx < 0 || clientIdx >= len(clients) {
		c.printf("Invalid client.\n")
		return
	}

	c.printf("\nAvailable rooms:\n")
	for i, room := range available {
		c.printf("%d. %s - %s (%s/night)\n", i+1, room.Code, room.Description, room.NightlyPrice.StringFixed(2))
	}
	roomIdx := c.promptInt("Room number: ") - 1
	if roomIdx < 0 || roomIdx >= len(available) {
		c.printf("Invalid room.\n")
		return
	}

	start, ok := c.promptDate("Start date (YYYY-MM-DD HH:MM): ")
	if !ok {
		return
	}
	end, ok := c.promptDate("End date (YYYY-MM-DD HH:MM): ")
	if !ok {
		return
	}

	res, err := c.catalog.CreateReservation(clients[clientIdx].ID, available[roomIdx].ID, start, end)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Reservation created: %d night(s), total %s\n", res.Nights, res.TotalPrice.StringFixed(2))
}

func (c *CLI) listReservations(reservations []*domain.Reservation) {
	if len(reservations) == 0 {
		c.printf("No reservations registered.\n")
		return
	}
	for i, res := range reservations {
		paid := "unpaid"
		if res.Payment != nil {
			paid = "paid"
		}
		clientName := res.ClientID.String()
		if client, err := c.catalog.ClientByID(res.ClientID); err == nil {
			clientName = client.FullName
		}
		roomCode := res.RoomID.String()
		if room, err := c.catalog.RoomByID(res.RoomID); err == nil {
			roomCode = room.Code
		}
		c.printf("%d. %s - %s | %s -> %s | %d night(s) | %s | %s | %s\n",
			i+1, clientName, roomCode,
			res.Start.Format(dateLayout), res.End.Format(dateLayout),
			res.Nights, res.TotalPrice.StringFixed(2), res.Status, paid)
	}
}

func (c *CLI) changeReservationStatus() {
	reservations := c.catalog.Reservations()
	if len(reservations) == 0 {
		c.printf("No reservations registered.\n")
		return
	}
	c.listReservations(reservations)
	idx := c.promptInt("Reservation number: ") - 1
	if idx < 0 || idx >= len(reservations) {
		c.printf("Invalid reservation.\n")
		return
	}

	statuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}
	for i, status := range statuses {
		c.printf("%d. %s\n", i+1, status)
	}
	choice := c.promptInt("Select new status: ") - 1
	if choice < 0 || choice >= len(statuses) {
		c.printf("Invalid option.\n")
		return
	}

	if err := c.catalog.ChangeReservationStatus(reservations[idx].ID, statuses[choice]); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Reservation status updated to %s\n", statuses[choice])
}

func (c *CLI) paymentsMenu() {
	for {
		c.printf("\n--- PAYMENTS ---\n")
		c.printf("1. Attach payment to reservation\n")
		c.printf("2. Void payment\n")
		c.printf("3. Back\n")

		switch c.promptInt("Select an option: ") {
		case 1:
			c.attachPayment()
		case 2:
			c.voidPayment()
		case 3:
			return
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *CLI) attachPayment() {
	unpaid := c.catalog.UnpaidReservations()
	if len(unpaid) == 0 {
		c.printf("Every reservation already has a payment attached.\n")
		return
	}
	c.printf("Reservations awaiting payment:\n")
	c.listReservations(unpaid)
	idx := c.promptInt("Reservation number: ") - 1
	if idx < 0 || idx >= len(unpaid) {
		c.printf("Invalid reservation.\n")
		return
	}
	res := unpaid[idx]

	c.printf("Payment methods:\n1. Card\n2. Cash\n")
	var payment domain.Payment
	switch c.promptInt("Select payment method: ") {
	case 1:
		holder := c.prompt("Card holder: ")
		number := c.prompt("Card number: ")
		cvv := c.prompt("CVV: ")
		expiry := c.prompt("Expiry (MM/YY): ")
		payment = domain.NewCardPayment(res.TotalPrice, "Tarjeta", holder, number, cvv, expiry)
	case 2:
		tendered, err := decimal.NewFromString(c.prompt("Cash received: "))
		if err != nil {
			c.printf("Cash received must be a number.\n")
			return
		}
		if tendered.LessThan(res.TotalPrice) {
			c.printf("Cash received must cover the total of %s\n", res.TotalPrice.StringFixed(2))
			return
		}
		payment = domain.NewCashPayment(res.TotalPrice, "Efectivo", tendered)
	default:
		c.printf("Invalid payment method.\n")
		return
	}

	if err := c.catalog.AttachPayment(res.ID, payment); err != nil {
		c.reportError(err)
		return
	}
	c.printf("%s\n", payment.Process())
	c.printf("Payment attached to the reservation.\n")
}

func (c *CLI) voidPayment() {
	paid := c.catalog.PaidReservations()
	if len(paid) == 0 {
		c.printf("No reservations with a payment attached.\n")
		return
	}
	c.printf("Reservations with a payment:\n")
	c.listReservations(paid)
	idx := c.promptInt("Reservation number: ") - 1
	if idx < 0 || idx >= len(paid) {
		c.printf("Invalid reservation.\n")
		return
	}
	res := paid[idx]

	c.printf("Void payment of %s (%s)?\n", res.Payment.Info().Amount.StringFixed(2), res.Payment.Info().Method)
	answer := strings.ToLower(c.prompt("Confirm (y/n): "))
	if answer != "y" && answer != "yes" {
		c.printf("Operation cancelled.\n")
		return
	}

	if err := c.catalog.VoidPayment(res.ID); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Payment voided.\n")
}

func (c *CLI) save() {
	data := snapshot.Data{
		House:        c.catalog.House(),
		Rooms:        c.catalog.Rooms(),
		Clients:      c.catalog.Clients(),
		Reservations: c.catalog.Reservations(),
	}
	if err := c.store.Save(data); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Data saved to %s\n", c.store.Path())
}

func (c *CLI) seed() {
	if err := c.catalog.Seed(); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Test data created: 2 rooms, 1 client, 1 confirmed reservation with payment.\n")
}

func (c *CLI) stats() {
	s := c.catalog.Stats()
	c.printf("\n--- STATISTICS ---\n")
	c.printf("Rooms: %d (%d available)\n", s.Rooms, s.AvailableRooms)
	c.printf("Clients: %d\n", s.Clients)
	c.printf("Reservations: %d\n", s.Reservations)
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted,
	} {
		c.printf("  %s: %d\n", status, s.ByStatus[status])
	}
	c.printf("Revenue (confirmed + completed): %s\n", s.Revenue.StringFixed(2))
}

func (c *CLI) prompt(label string) string {
	c.printf("%s", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *CLI) promptInt(label string) int {
	n, err := strconv.Atoi(c.prompt(label))
	if err != nil {
		return -1
	}
	return n
}

func (c *CLI) promptDate(label string) (time.Time, bool) {
	raw := c.prompt(label)
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		c.printf("Expected format YYYY-MM-DD HH:MM (for example 2026-01-01 20:00).\n")
		return time.Time{}, false
	}
	return t, true
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) reportError(err error) {
	c.printf("Error: %v\n", err)
}
