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

// NotificationDispatcher is the detached unit of work the create path hands a
// freshly persisted prospect to. Enqueue must never block the request.
type NotificationDispatcher interface {
	Enqueue(prospect *domain.Prospect)
}

// ProspectService implements the submission-and-triage workflow.
type ProspectService struct {
	repo       ports.ProspectRepository
	dispatcher NotificationDispatcher
	log        zerolog.Logger
}

func NewProspectService(repo ports.ProspectRepository, dispatcher NotificationDispatcher, log zerolog.Logger) *ProspectService {
	return &ProspectService{repo: repo, dispatcher: dispatcher, log: log}
}

// Create persists the submission with status=pending and enqueues the staff
// notification. The prospect record is the durable source of truth; the email
// is best-effort and never fails the create.
func (s *ProspectService) Create(ctx context.Context, input ports.CreateProspectInput) (*domain.Prospect, error) {
	// The nested name object is optional-shaped in transit, so its presence is
	// checked explicitly beyond the schema-level validation.
	if strings.TrimSpace(input.Contact.Name.FirstName) == "" ||
		strings.TrimSpace(input.Contact.Name.LastName) == "" {
		return nil, domain.ErrMissingProspectName
	}

	now := time.Now().UTC()
	prospect := &domain.Prospect{
		Contact: domain.Contact{
			Name: domain.Name{
				FirstName: input.Contact.Name.FirstName,
				LastName:  input.Contact.Name.LastName,
			},
			// Submitted contact details are stored verbatim; only staff
			// account emails are normalized.
			Email:            input.Contact.Email,
			Phone:            input.Contact.Phone,
			PreferredContact: domain.PreferredContact(input.Contact.PreferredContact),
			BusinessName:     input.Contact.BusinessName,
		},
		Goals: domain.Goals{
			FinancialGoals: input.Goals.FinancialGoals,
			Challenges:     input.Goals.Challenges,
		},
		Services: domain.Services{
			SelectedServices: input.Services.SelectedServices,
		},
		Budget: domain.Budget{
			BudgetRange: domain.BudgetRange(input.Budget.BudgetRange),
		},
		Status:    domain.StatusPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, prospect)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create prospect")
		return nil, err
	}

	metrics.ProspectsSubmittedTotal.WithLabelValues(string(created.Budget.BudgetRange)).Inc()
	s.log.Info().Str("prospect_id", created.ID).Msg("prospect created")

	if s.dispatcher != nil {
		s.dispatcher.Enqueue(created)
	}

	return created, nil
}

func (s *ProspectService) FindAll(ctx context.Context) ([]*domain.Prospect, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProspectService) Update(ctx context.Context, id string, input ports.UpdateProspectInput) (*domain.Prospect, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("prospect_id", id).Msg("prospect updated")
	return updated, nil
}

func (s *ProspectService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("prospect_id", id).Msg("prospect deleted")
	return nil
}
