package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no client with the requested id exists.
var ErrNotFound = errors.New("client not found")

// Client is a customer record. Jobs reference it by id and carry their
// own name snapshot, so deleting a client never touches its jobs.
type Client struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Address      string    `json:"address,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	EmailAddress string    `json:"email_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
