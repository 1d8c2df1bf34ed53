package catalog

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
)

// Catalog owns the in-memory state of the lodging business: the house
// identity, its rooms, the registered clients and the reservations. It is
// the single actor over that state; all methods are synchronous and every
// mutation is validate-then-commit.
type Catalog struct {
	house        domain.House
	rooms        []*domain.Room
	clients      []*domain.Client
	reservations []*domain.Reservation

	validate *validator.Validate
	logger   *zap.Logger
}

func New(house domain.House, logger *zap.Logger) *Catalog {
	return &Catalog{
		house:    house,
		validate: validator.New(),
		logger:   logger,
	}
}

// Restore replaces the whole state with a loaded snapshot.
func (c *Catalog) Restore(house domain.House, rooms []*domain.Room, clients []*domain.Client, reservations []*domain.Reservation) {
	c.house = house
	c.rooms = rooms
	c.clients = clients
	c.reservations = reservations
	c.logger.Info("catalog restored from snapshot",
		zap.Int("rooms", len(rooms)),
		zap.Int("clients", len(clients)),
		zap.Int("reservations", len(reservations)))
}

func (c *Catalog) House() domain.House { return c.house }

type RoomInput struct {
	Code         string `validate:"required"`
	Description  string `validate:"required"`
	Capacity     int    `validate:"required,gt=0"`
	NightlyPrice decimal.Decimal
}

func (c *Catalog) AddRoom(input RoomInput) (*domain.Room, error) {
	if err := c.check(input); err != nil {
		return nil, err
	}

	room, err := domain.NewRoom(input.Code, input.Description, input.Capacity, input.NightlyPrice)
	if err != nil {
		return nil, err
	}

	c.rooms = append(c.rooms, room)
	c.logger.Info("room added",
		zap.String("roomId", room.ID.String()),
		zap.String("code", room.Code),
		zap.String("nightlyPrice", room.NightlyPrice.String()))
	return room, nil
}

func (c *Catalog) Rooms() []*domain.Room { return c.rooms }

func (c *Catalog) AvailableRooms() []*domain.Room {
	available := []*domain.Room{}
	for _, room := range c.rooms {
		if room.Available {
			available = append(available, room)
		}
	}
	return available
}

func (c *Catalog) RoomByID(id uuid.UUID) (*domain.Room, error) {
	for _, room := range c.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, apperrors.NewNotFoundError("room not found")
}

type ClientInput struct {
	FullName       string `validate:"required"`
	DocumentNumber string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string `validate:"required"`
}

func (c *Catalog) RegisterClient(input ClientInput) (*domain.Client, error) {
	if err := c.check(input); err != nil {
		return nil, err
	}

	client := domain.NewClient(input.FullName, input.DocumentNumber, input.Email, input.Phone)
	c.clients = append(c.clients, client)
	c.logger.Info("client registered",
		zap.String("clientId", client.ID.String()),
		zap.String("document", client.DocumentNumber))
	return client, nil
}

func (c *Catalog) Clients() []*domain.Client { return c.clients }

func (c *Catalog) ClientByID(id uuid.UUID) (*domain.Client, error) {
	for _, client := range c.clients {
		if client.ID == id {
			return client, nil
		}
	}
	return nil, apperrors.NewNotFoundError("client not found")
}

// RemoveClient deletes a client. It is refused while any reservation
// referencing the client is still active; cancelled or completed history is
// kept and does not block the deletion.
func (c *Catalog) RemoveClient(id uuid.UUID) error {
	if _, err := c.ClientByID(id); err != nil {
		return err
	}

	for _, res := range c.reservations {
		if res.ClientID == id && !res.Status.Terminal() {
			return apperrors.NewConflictError("client has an active reservation in status " + string(res.Status))
		}
	}

	for i, client := range c.clients {
		if client.ID == id {
			c.clients = append(c.clients[:i], c.clients[i+1:]...)
			break
		}
	}
	c.logger.Info("client removed", zap.String("clientId", id.String()))
	return nil
}

// check runs struct validation and converts the result into the shared
// ValidationError shape.
func (c *Catalog) check(v interface{}) error {
	err := c.validate.Struct(v)
	if err == nil {
		return nil
	}

	var details []apperrors.ValidationDetail
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details = append(details, apperrors.ValidationDetail{
				Field:   fe.Field(),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
	}
	return apperrors.NewValidationError("validation failed", details...)
}
