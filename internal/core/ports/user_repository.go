package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// UserRepository defines persistence operations for staff accounts.
// Email uniqueness is enforced by the storage layer; Create returns
// domain.ErrUserExists when the normalized email is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UpdateUserInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// UpdateUserInput is a partial profile update; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *NameInput
	Email *string
}

// NameInput holds a first/last name pair from the transport layer.
type NameInput struct {
	FirstName string
	LastName  string
}
