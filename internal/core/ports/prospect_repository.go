package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// ProspectRepository defines persistence operations for prospects.
type ProspectRepository interface {
	Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error)
	// FindAll returns every prospect ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*domain.Prospect, error)
	// Update applies a partial update by id and returns the updated document.
	// Returns domain.ErrProspectNotFound when the id does not resolve.
	Update(ctx context.Context, id string, update UpdateProspectInput) (*domain.Prospect, error)
	// Delete hard-deletes by id. Returns domain.ErrProspectNotFound when absent.
	Delete(ctx context.Context, id string) error
}
