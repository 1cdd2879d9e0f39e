package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// CreateRecipientInput carries a new distribution-list entry. Active defaults
// to true when nil.
type CreateRecipientInput struct {
	Email       string
	Name        string
	Description string
	Active      *bool
}

// RecipientService defines CRUD over the notification distribution list.
type RecipientService interface {
	Create(ctx context.Context, input CreateRecipientInput) (*domain.EmailRecipient, error)
	FindAll(ctx context.Context) ([]*domain.EmailRecipient, error)
	FindByID(ctx context.Context, id string) (*domain.EmailRecipient, error)
	Update(ctx context.Context, id string, input UpdateRecipientInput) (*domain.EmailRecipient, error)
	Remove(ctx context.Context, id string) error
}
