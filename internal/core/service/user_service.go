package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

// UserService manages staff profiles. Password changes are handled separately
// by AuthService.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.UpdateUserInput) (*domain.User, error) {
	if update.Email != nil {
		email := domain.NormalizeEmail(*update.Email)
		update.Email = &email

		// Reject an email already owned by another account.
		existing, err := s.users.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, domain.ErrUserExists
		}
	}

	updated, err := s.users.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}
