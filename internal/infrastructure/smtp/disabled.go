package smtp

import (
	"context"
	"errors"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type disabledMailer struct {
	reason string
}

// NewDisabledMailer returns a Mailer that fails every send with the given
// reason. Used when no SMTP transport is configured so the rest of the
// service can run without mail delivery.
func NewDisabledMailer(reason string) ports.Mailer {
	return &disabledMailer{reason: reason}
}

func (m *disabledMailer) Send(_ context.Context, _, _, _, _ string) error {
	if m.reason == "" {
		return errors.New("mail transport disabled")
	}
	return errors.New(m.reason)
}
