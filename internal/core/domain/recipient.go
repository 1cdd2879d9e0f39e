package domain

import (
	"errors"
	"time"
)

var ErrRecipientNotFound = errors.New("email recipient not found")
var ErrRecipientExists = errors.New("a recipient with this email already exists")

// EmailRecipient is an address on the prospect-notification distribution list.
// Only recipients with Active set receive notifications.
type EmailRecipient struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
