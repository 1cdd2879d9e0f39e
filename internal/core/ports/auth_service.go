package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// RegisterInput carries everything needed to create a staff account.
type RegisterInput struct {
	Email    string
	Password string
	Name     NameInput
}

// AuthService implements registration, login, and password change.
type AuthService interface {
	// Register creates the account and returns a signed token alongside it.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token alongside the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ChangePassword verifies the current password before applying the new one.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
