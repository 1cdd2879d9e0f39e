package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UpdateUserInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = domain.Name{FirstName: update.Name.FirstName, LastName: update.Name.LastName}
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func registerInput(email, password string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:    email,
		Password: password,
		Name:     ports.NameInput{FirstName: "Alice", LastName: "Nguyen"},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Register(context.Background(), registerInput("Alice@Example.com", "Str0ng!pass"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub claim %q, got %v", user.ID, claims["sub"])
	}
	if claims["email"] != user.Email {
		t.Fatalf("expected email claim %q, got %v", user.Email, claims["email"])
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com", "Str0ng!pass")); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, _, err := svc.Register(context.Background(), registerInput("BOB@example.com", "Str0ng!pass"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Register(context.Background(), registerInput("carol@example.com", "short"))
	var pe *domain.PasswordPolicyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PasswordPolicyError, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"at least 8 characters",
		"uppercase letter",
		"one number",
		"special character",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected failure message to mention %q, got %q", want, msg)
		}
	}

	if _, lookupErr := repo.FindByEmail(context.Background(), "carol@example.com"); !errors.Is(lookupErr, domain.ErrUserNotFound) {
		t.Fatalf("weak-password registration must not persist a user, got %v", lookupErr)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("dan@example.com", "Str0ng!pass")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "dan@example.com", "Wr0ng!pass")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if errors.Is(err, domain.ErrUnknownEmail) {
		t.Fatalf("wrong password must be distinguishable from unknown email")
	}
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_SuccessResetsLimiter(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("erin@example.com", "Str0ng!pass")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Erin@Example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset on success, got %d", limiter.resets)
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{blocked: true}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "erin@example.com", "Str0ng!pass")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, zerolog.Nop())

	_, user, err := svc.Register(context.Background(), registerInput("fay@example.com", "Str0ng!pass"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "Wr0ng!pass", "N3w!passwd"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword for bad current password, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "Str0ng!pass", "Str0ng!pass"); !errors.Is(err, domain.ErrSamePassword) {
		t.Fatalf("expected ErrSamePassword, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "Str0ng!pass", "weak"); err == nil {
		t.Fatalf("expected password policy error for weak new password")
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "Str0ng!pass", "N3w!passwd"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "fay@example.com", "N3w!passwd"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "fay@example.com", "Str0ng!pass"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("old password must no longer work, got %v", err)
	}
}
