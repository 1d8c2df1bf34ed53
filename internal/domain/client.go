package domain

import "github.com/google/uuid"

// Client is a registered guest. Reservations reference clients by ID, so
// deleting a client is a catalog decision guarded by the reservations that
// point at it.
type Client struct {
	ID             uuid.UUID
	FullName       string
	DocumentNumber string
	Email          string
	Phone          string
}

func NewClient(fullName, documentNumber, email, phone string) *Client {
	return &Client{
		ID:             uuid.New(),
		FullName:       fullName,
		DocumentNumber: documentNumber,
		Email:          email,
		Phone:          phone,
	}
}
