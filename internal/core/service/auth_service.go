package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlexMorrow239/zomma-prototype/internal/api/metrics"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

const bcryptCost = 10

// LoginLimiter abstracts the failed-attempt counter (Redis). A nil limiter
// disables rate limiting.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login, and password change.
type AuthService struct {
	users     ports.UserRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	email := domain.NormalizeEmail(input.Email)

	// Pre-check for a friendlier conflict path; the unique index on email is
	// the authoritative guard against concurrent registration races.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name: domain.Name{
			FirstName: input.Name.FirstName,
			LastName:  input.Name.LastName,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter check failed, allowing attempt")
		} else if blocked {
			metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrUnknownEmail
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrWrongPassword
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrWrongPassword
	}
	if newPassword == currentPassword {
		return domain.ErrSamePassword
	}
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
