package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/api/metrics"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

const (
	// maxSendAttempts is the total tries per recipient, including the first.
	maxSendAttempts = 3
	retryDelay      = time.Second
)

const textDisclaimer = "\n\nNOTE: This email was sent from a no-reply address. Please do not reply to this email."
const htmlDisclaimer = "\n<p style=\"color: #64748b; font-size: 12px; margin-top: 20px;\">NOTE: This email was sent from a no-reply address. Please do not reply to this email.</p>"

// NotificationService renders and delivers the new-prospect notification.
// Delivery is advisory: every failure is contained here and only logged.
type NotificationService struct {
	mailer     ports.Mailer
	recipients ports.RecipientRepository
	fallback   []string
	delay      time.Duration
	log        zerolog.Logger
}

// NewNotificationService builds the notifier. fallback is the configured
// recipient list used when the distribution list is empty or unreadable.
func NewNotificationService(mailer ports.Mailer, recipients ports.RecipientRepository, fallback []string, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		mailer:     mailer,
		recipients: recipients,
		fallback:   fallback,
		delay:      retryDelay,
		log:        log,
	}
}

// NotifyProspect sends the notification to every active recipient, resolved at
// call time. One recipient's failure never blocks the rest.
func (s *NotificationService) NotifyProspect(ctx context.Context, prospect *domain.Prospect) {
	emails := s.resolveRecipients(ctx)
	if len(emails) == 0 {
		s.log.Warn().Str("prospect_id", prospect.ID).Msg("no recipients configured, skipping prospect notification")
		return
	}

	subject, text, html, err := renderProspectNotification(prospect)
	if err != nil {
		s.log.Error().Err(err).Str("prospect_id", prospect.ID).Msg("failed to render prospect notification")
		return
	}
	text += textDisclaimer
	html += htmlDisclaimer

	for _, to := range emails {
		s.sendWithRetry(ctx, to, subject, text, html)
	}

	s.log.Info().
		Str("prospect_id", prospect.ID).
		Str("recipients", strings.Join(emails, ", ")).
		Msg("prospect notification dispatched")
}

// resolveRecipients returns the active distribution list, falling back to the
// configured static list when the query fails or yields nothing.
func (s *NotificationService) resolveRecipients(ctx context.Context) []string {
	if s.recipients != nil {
		emails, err := s.recipients.ActiveEmails(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to load active recipients, using fallback list")
		} else if len(emails) > 0 {
			return emails
		}
	}
	return s.fallback
}

func (s *NotificationService) sendWithRetry(ctx context.Context, to, subject, text, html string) {
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		err := s.mailer.Send(ctx, to, subject, text, html)
		if err == nil {
			metrics.NotificationEmailsTotal.WithLabelValues("sent").Inc()
			s.log.Info().Str("to", to).Msg("notification email sent")
			return
		}

		if attempt == maxSendAttempts {
			metrics.NotificationEmailsTotal.WithLabelValues("failed").Inc()
			s.log.Error().Err(err).Str("to", to).Int("attempts", attempt).Msg("giving up on notification email")
			return
		}

		metrics.NotificationRetriesTotal.Inc()
		s.log.Warn().Err(err).Str("to", to).Int("attempt", attempt).Msg("notification email failed, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.delay):
		}
	}
}
