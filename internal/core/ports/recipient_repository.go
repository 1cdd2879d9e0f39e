package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// RecipientRepository defines persistence operations for the notification
// distribution list.
type RecipientRepository interface {
	Create(ctx context.Context, r *domain.EmailRecipient) (*domain.EmailRecipient, error)
	FindAll(ctx context.Context) ([]*domain.EmailRecipient, error)
	FindByID(ctx context.Context, id string) (*domain.EmailRecipient, error)
	Update(ctx context.Context, id string, update UpdateRecipientInput) (*domain.EmailRecipient, error)
	Delete(ctx context.Context, id string) error
	// ActiveEmails returns the addresses of every recipient with active=true.
	ActiveEmails(ctx context.Context) ([]string, error)
}

// UpdateRecipientInput is a partial update; nil fields are left untouched.
type UpdateRecipientInput struct {
	Email       *string
	Name        *string
	Description *string
	Active      *bool
}
