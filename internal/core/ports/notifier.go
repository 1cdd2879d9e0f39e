package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// Mailer abstracts the mail transport (SMTP in production).
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// NotificationService delivers the new-prospect notification to every active
// recipient. It never returns an error: delivery is advisory, all failures are
// contained and logged.
type NotificationService interface {
	NotifyProspect(ctx context.Context, prospect *domain.Prospect)
}
