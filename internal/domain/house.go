package domain

import "github.com/google/uuid"

// House is the identity of the lodging business itself.
type House struct {
	ID      uuid.UUID
	Name    string
	Address string
	Phone   string
}
