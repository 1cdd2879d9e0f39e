package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type stubRecipientRepo struct {
	recipients []*domain.EmailRecipient
	activeErr  error
}

func (r *stubRecipientRepo) Create(_ context.Context, rec *domain.EmailRecipient) (*domain.EmailRecipient, error) {
	r.recipients = append(r.recipients, rec)
	return rec, nil
}

func (r *stubRecipientRepo) FindAll(_ context.Context) ([]*domain.EmailRecipient, error) {
	return r.recipients, nil
}

func (r *stubRecipientRepo) FindByID(_ context.Context, id string) (*domain.EmailRecipient, error) {
	for _, rec := range r.recipients {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, domain.ErrRecipientNotFound
}

func (r *stubRecipientRepo) Update(_ context.Context, _ string, _ ports.UpdateRecipientInput) (*domain.EmailRecipient, error) {
	return nil, domain.ErrRecipientNotFound
}

func (r *stubRecipientRepo) Delete(_ context.Context, _ string) error {
	return domain.ErrRecipientNotFound
}

func (r *stubRecipientRepo) ActiveEmails(_ context.Context) ([]string, error) {
	if r.activeErr != nil {
		return nil, r.activeErr
	}
	var out []string
	for _, rec := range r.recipients {
		if rec.Active {
			out = append(out, rec.Email)
		}
	}
	return out, nil
}

type sentMail struct {
	to       string
	subject  string
	textBody string
	htmlBody string
}

// stubMailer fails the first failuresPerAddr attempts to each address, then
// succeeds.
type stubMailer struct {
	failuresPerAddr int
	attempts        map[string]int
	attemptTimes    []time.Time
	sent            []sentMail
}

func newStubMailer(failuresPerAddr int) *stubMailer {
	return &stubMailer{failuresPerAddr: failuresPerAddr, attempts: make(map[string]int)}
}

func (m *stubMailer) Send(_ context.Context, to, subject, textBody, htmlBody string) error {
	m.attempts[to]++
	m.attemptTimes = append(m.attemptTimes, time.Now())
	if m.attempts[to] <= m.failuresPerAddr {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, textBody: textBody, htmlBody: htmlBody})
	return nil
}

func notifierUnderTest(mailer ports.Mailer, repo ports.RecipientRepository, fallback []string) *NotificationService {
	svc := NewNotificationService(mailer, repo, fallback, zerolog.Nop())
	svc.delay = time.Millisecond
	return svc
}

func sampleProspect() *domain.Prospect {
	return &domain.Prospect{
		ID: "prospect-1",
		Contact: domain.Contact{
			Name:             domain.Name{FirstName: "Maya", LastName: "Torres"},
			Email:            "maya@example.com",
			Phone:            "+15551234567",
			PreferredContact: domain.ContactByEmail,
			BusinessName:     "Torres Consulting",
		},
		Goals: domain.Goals{
			FinancialGoals: "Grow revenue",
			Challenges:     "Cash flow",
		},
		Services: domain.Services{SelectedServices: []string{"bookkeeping"}},
		Budget:   domain.Budget{BudgetRange: domain.Budget10kTo25k},
		Status:   domain.StatusPending,
	}
}

func TestNotificationService_SendsToActiveRecipientsOnly(t *testing.T) {
	repo := &stubRecipientRepo{recipients: []*domain.EmailRecipient{
		{ID: "r1", Email: "active@example.com", Active: true},
		{ID: "r2", Email: "inactive@example.com", Active: false},
	}}
	mailer := newStubMailer(0)
	svc := notifierUnderTest(mailer, repo, nil)

	svc.NotifyProspect(context.Background(), sampleProspect())

	if len(mailer.sent) != 1 || mailer.sent[0].to != "active@example.com" {
		t.Fatalf("expected one send to the active recipient, got %+v", mailer.sent)
	}
	if mailer.attempts["inactive@example.com"] != 0 {
		t.Fatalf("inactive recipient must not be contacted")
	}
}

func TestNotificationService_RetriesThenSucceeds(t *testing.T) {
	repo := &stubRecipientRepo{recipients: []*domain.EmailRecipient{
		{ID: "r1", Email: "staff@example.com", Active: true},
	}}
	mailer := newStubMailer(2)
	svc := notifierUnderTest(mailer, repo, nil)

	svc.NotifyProspect(context.Background(), sampleProspect())

	if got := mailer.attempts["staff@example.com"]; got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected delivery on the final attempt")
	}
}

func TestNotificationService_GivesUpAfterThreeAttempts(t *testing.T) {
	repo := &stubRecipientRepo{recipients: []*domain.EmailRecipient{
		{ID: "r1", Email: "broken@example.com", Active: true},
		{ID: "r2", Email: "fine@example.com", Active: true},
	}}
	// Three failures per address exhaust the retry budget for both.
	mailer := newStubMailer(3)
	svc := notifierUnderTest(mailer, repo, nil)

	svc.NotifyProspect(context.Background(), sampleProspect())

	if got := mailer.attempts["broken@example.com"]; got != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", got)
	}
	// One recipient's failure never blocks the next.
	if got := mailer.attempts["fine@example.com"]; got != 3 {
		t.Fatalf("expected remaining recipient to be attempted, got %d attempts", got)
	}
}

func TestNotificationService_RetriesAreSpacedByDelay(t *testing.T) {
	repo := &stubRecipientRepo{recipients: []*domain.EmailRecipient{
		{ID: "r1", Email: "broken@example.com", Active: true},
	}}
	mailer := newStubMailer(3)
	svc := notifierUnderTest(mailer, repo, nil)
	svc.delay = 25 * time.Millisecond

	svc.NotifyProspect(context.Background(), sampleProspect())

	if len(mailer.attemptTimes) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(mailer.attemptTimes))
	}
	for i := 1; i < len(mailer.attemptTimes); i++ {
		if gap := mailer.attemptTimes[i].Sub(mailer.attemptTimes[i-1]); gap < svc.delay {
			t.Fatalf("attempt %d followed after %v, want at least %v", i+1, gap, svc.delay)
		}
	}
}

func TestNotificationService_FallbackRecipients(t *testing.T) {
	repo := &stubRecipientRepo{activeErr: errors.New("mongo down")}
	mailer := newStubMailer(0)
	svc := notifierUnderTest(mailer, repo, []string{"fallback@example.com"})

	svc.NotifyProspect(context.Background(), sampleProspect())

	if len(mailer.sent) != 1 || mailer.sent[0].to != "fallback@example.com" {
		t.Fatalf("expected fallback delivery, got %+v", mailer.sent)
	}
}

func TestNotificationService_NoRecipientsIsNoOp(t *testing.T) {
	repo := &stubRecipientRepo{}
	mailer := newStubMailer(0)
	svc := notifierUnderTest(mailer, repo, nil)

	svc.NotifyProspect(context.Background(), sampleProspect())

	if len(mailer.sent) != 0 {
		t.Fatalf("expected no sends, got %+v", mailer.sent)
	}
}

func TestNotificationService_MessageContent(t *testing.T) {
	repo := &stubRecipientRepo{recipients: []*domain.EmailRecipient{
		{ID: "r1", Email: "staff@example.com", Active: true},
	}}
	mailer := newStubMailer(0)
	svc := notifierUnderTest(mailer, repo, nil)

	svc.NotifyProspect(context.Background(), sampleProspect())

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.subject != "New Prospect Application Received" {
		t.Fatalf("unexpected subject %q", msg.subject)
	}
	for _, want := range []string{"Maya Torres", "maya@example.com", "Torres Consulting", "bookkeeping"} {
		if !strings.Contains(msg.textBody, want) {
			t.Fatalf("text body missing %q:\n%s", want, msg.textBody)
		}
	}
	if !strings.HasSuffix(msg.textBody, textDisclaimer) {
		t.Fatalf("text body missing no-reply disclaimer")
	}
	if !strings.HasSuffix(msg.htmlBody, htmlDisclaimer) {
		t.Fatalf("html body missing no-reply disclaimer")
	}
}
