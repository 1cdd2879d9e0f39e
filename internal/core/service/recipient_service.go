package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

// RecipientService manages the notification distribution list.
type RecipientService struct {
	repo ports.RecipientRepository
	log  zerolog.Logger
}

func NewRecipientService(repo ports.RecipientRepository, log zerolog.Logger) *RecipientService {
	return &RecipientService{repo: repo, log: log}
}

func (s *RecipientService) Create(ctx context.Context, input ports.CreateRecipientInput) (*domain.EmailRecipient, error) {
	// New recipients are active unless explicitly disabled.
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	recipient := &domain.EmailRecipient{
		Email:       domain.NormalizeEmail(input.Email),
		Name:        input.Name,
		Description: input.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, recipient)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("recipient_id", created.ID).Str("email", created.Email).Msg("recipient created")
	return created, nil
}

func (s *RecipientService) FindAll(ctx context.Context) ([]*domain.EmailRecipient, error) {
	return s.repo.FindAll(ctx)
}

func (s *RecipientService) FindByID(ctx context.Context, id string) (*domain.EmailRecipient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipientService) Update(ctx context.Context, id string, input ports.UpdateRecipientInput) (*domain.EmailRecipient, error) {
	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		input.Email = &email
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("recipient_id", id).Msg("recipient updated")
	return updated, nil
}

func (s *RecipientService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("recipient_id", id).Msg("recipient deleted")
	return nil
}
