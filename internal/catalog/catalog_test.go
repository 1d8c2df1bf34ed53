package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
)

func newTestCatalog() *Catalog {
	return New(domain.House{
		ID:      uuid.New(),
		Name:    "Casa Rural Los Alamos",
		Address: "Calle Principal 123, Pueblo Viejo",
		Phone:   "912345678",
	}, zap.NewNop())
}

func testRoomInput() RoomInput {
	return RoomInput{
		Code:         "H001",
		Description:  "Habitacion Doble Estandar",
		Capacity:     2,
		NightlyPrice: decimal.RequireFromString("45.00"),
	}
}

func testClientInput() ClientInput {
	return ClientInput{
		FullName:       "Maria Garcia Lopez",
		DocumentNumber: "12345678A",
		Email:          "maria.garcia@email.com",
		Phone:          "611223344",
	}
}

func futureRange() (time.Time, time.Time) {
	start := time.Now().Add(7 * 24 * time.Hour)
	return start, start.Add(2 * 24 * time.Hour)
}

func TestAddRoom(t *testing.T) {
	c := newTestCatalog()

	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	assert.Equal(t, "H001", room.Code)
	assert.Len(t, c.Rooms(), 1)
}

func TestAddRoom_ValidationFailures(t *testing.T) {
	c := newTestCatalog()

	input := testRoomInput()
	input.Code = ""
	_, err := c.AddRoom(input)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Code", ve.Details[0].Field)

	input = testRoomInput()
	input.Capacity = 0
	_, err = c.AddRoom(input)
	_, ok = apperrors.IsValidationError(err)
	assert.True(t, ok)

	input = testRoomInput()
	input.NightlyPrice = decimal.Zero
	_, err = c.AddRoom(input)
	_, ok = apperrors.IsInvalidAmountError(err)
	assert.True(t, ok)
	assert.Len(t, c.Rooms(), 0, "failed add must not store the room")
}

func TestAvailableRooms(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)

	assert.Len(t, c.AvailableRooms(), 1)
	room.Available = false
	assert.Len(t, c.AvailableRooms(), 0)
}

func TestRegisterClient(t *testing.T) {
	c := newTestCatalog()

	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)
	assert.Equal(t, "Maria Garcia Lopez", client.FullName)

	got, err := c.ClientByID(client.ID)
	require.NoError(t, err)
	assert.Equal(t, client, got)
}

func TestRegisterClient_InvalidEmail(t *testing.T) {
	c := newTestCatalog()

	input := testClientInput()
	input.Email = "not-an-email"
	_, err := c.RegisterClient(input)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Email", ve.Details[0].Field)
	assert.Len(t, c.Clients(), 0)
}

func TestRemoveClient_UnknownClient(t *testing.T) {
	c := newTestCatalog()

	err := c.RemoveClient(uuid.New())
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRemoveClient_BlockedByActiveReservation(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)

	start, end := futureRange()
	res, err := c.CreateReservation(client.ID, room.ID, start, end)
	require.NoError(t, err)

	err = c.RemoveClient(client.ID)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "PENDING reservation must block deletion")

	require.NoError(t, c.ChangeReservationStatus(res.ID, domain.StatusCancelled))
	require.NoError(t, c.RemoveClient(client.ID))
	assert.Len(t, c.Clients(), 0)
	assert.Len(t, c.Reservations(), 1, "history is retained")
}

func TestCreateReservation(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)

	start, end := futureRange()
	res, err := c.CreateReservation(client.ID, room.ID, start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Nights)
	assert.Equal(t, "90.00", res.TotalPrice.String())
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.True(t, room.Available, "creating a reservation never toggles availability")
}

func TestCreateReservation_UnknownReferences(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)

	start, end := futureRange()

	_, err = c.CreateReservation(uuid.New(), room.ID, start, end)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	_, err = c.CreateReservation(client.ID, uuid.New(), start, end)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCreateReservation_InvalidDates(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)

	start, end := futureRange()
	_, err = c.CreateReservation(client.ID, room.ID, end, start)
	_, ok := apperrors.IsInvalidDatesError(err)
	assert.True(t, ok)
	assert.Len(t, c.Reservations(), 0)
}

func TestAttachAndVoidPayment(t *testing.T) {
	c := newTestCatalog()
	room, err := c.AddRoom(testRoomInput())
	require.NoError(t, err)
	client, err := c.RegisterClient(testClientInput())
	require.NoError(t, err)

	start, end := futureRange()
	res, err := c.CreateReservation(client.ID, room.ID, start, end)
	require.NoError(t, err)
	assert.Len(t, c.UnpaidReservations(), 1)

	payment := domain.NewCardPayment(res.TotalPrice, "Tarjeta", client.FullName, "4111111111111111", "123", "12/28")
	require.NoError(t, c.AttachPayment(res.ID, payment))
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.Len(t, c.PaidReservations(), 1)
	assert.Len(t, c.UnpaidReservations(), 0)

	require.NoError(t, c.VoidPayment(res.ID))
	assert.Nil(t, res.Payment)
	assert.Equal(t, domain.StatusPending, res.Status)

	err = c.VoidPayment(res.ID)
	_, ok := apperrors.IsInvalidPaymentError(err)
	assert.True(t, ok, "voiding twice must fail")
}

func TestAttachPayment_UnknownReservation(t *testing.T) {
	c := newTestCatalog()

	payment := domain.NewCashPayment(decimal.RequireFromString("90.00"), "Efectivo", decimal.RequireFromString("90.00"))
	err := c.AttachPayment(uuid.New(), payment)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSeed(t *testing.T) {
	c := newTestCatalog()
	require.NoError(t, c.Seed())

	assert.Equal(t, "Casa Rural Los Alamos", c.House().Name)
	require.Len(t, c.Rooms(), 2)
	assert.Equal(t, "45.00", c.Rooms()[0].NightlyPrice.String())
	assert.Equal(t, "65.00", c.Rooms()[1].NightlyPrice.String())
	require.Len(t, c.Clients(), 1)
	require.Len(t, c.Reservations(), 1)

	res := c.Reservations()[0]
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.Equal(t, 2, res.Nights)
	assert.Equal(t, "90.00", res.TotalPrice.String())

	card, ok := res.Payment.(*domain.CardPayment)
	require.True(t, ok)
	assert.Equal(t, "1111", card.Last4)
}

func TestStats(t *testing.T) {
	c := newTestCatalog()
	require.NoError(t, c.Seed())

	s := c.Stats()
	assert.Equal(t, 2, s.Rooms)
	assert.Equal(t, 2, s.AvailableRooms)
	assert.Equal(t, 1, s.Clients)
	assert.Equal(t, 1, s.Reservations)
	assert.Equal(t, 1, s.ByStatus[domain.StatusConfirmed])
	assert.Equal(t, "90.00", s.Revenue.StringFixed(2))
}

func TestStats_RevenueSkipsTerminallyCancelled(t *testing.T) {
	c := newTestCatalog()
	require.NoError(t, c.Seed())
	res := c.Reservations()[0]

	require.NoError(t, c.ChangeReservationStatus(res.ID, domain.StatusCancelled))

	s := c.Stats()
	assert.Equal(t, 1, s.ByStatus[domain.StatusCancelled])
	assert.True(t, s.Revenue.IsZero())
}

func TestRestore(t *testing.T) {
	c := newTestCatalog()
	require.NoError(t, c.Seed())

	other := newTestCatalog()
	other.Restore(c.House(), c.Rooms(), c.Clients(), c.Reservations())

	assert.Equal(t, c.House(), other.House())
	assert.Len(t, other.Rooms(), 2)
	assert.Len(t, other.Reservations(), 1)
}
