package ports

import (
	"context"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// ContactInput holds the prospect's contact block.
type ContactInput struct {
	Name             NameInput
	Email            string
	Phone            string
	PreferredContact string
	BusinessName     string
}

// GoalsInput holds the free-text questionnaire answers.
type GoalsInput struct {
	FinancialGoals string
	Challenges     string
}

// ServicesInput holds the selected service identifiers.
type ServicesInput struct {
	SelectedServices []string
}

// BudgetInput holds the selected budget bracket.
type BudgetInput struct {
	BudgetRange string
}

// CreateProspectInput carries a full questionnaire submission.
type CreateProspectInput struct {
	Contact  ContactInput
	Goals    GoalsInput
	Services ServicesInput
	Budget   BudgetInput
	Notes    string
}

// UpdateProspectInput is a partial update; nil fields are left untouched.
type UpdateProspectInput struct {
	Contact  *ContactInput
	Goals    *GoalsInput
	Services *ServicesInput
	Budget   *BudgetInput
	Status   *string
	Notes    *string
}

// ProspectService defines use-case operations for prospects.
type ProspectService interface {
	// Create persists the submission and triggers the notification fan-out
	// without awaiting it; notification failures never fail the create.
	Create(ctx context.Context, input CreateProspectInput) (*domain.Prospect, error)
	FindAll(ctx context.Context) ([]*domain.Prospect, error)
	Update(ctx context.Context, id string, input UpdateProspectInput) (*domain.Prospect, error)
	Remove(ctx context.Context, id string) error
}
