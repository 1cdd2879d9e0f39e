package domain

import (
	"errors"
	"time"
)

// ProspectStatus is the triage state of a submitted lead.
type ProspectStatus string

const (
	StatusPending   ProspectStatus = "pending"
	StatusContacted ProspectStatus = "contacted"
)

// Valid reports whether s is a known status value.
func (s ProspectStatus) Valid() bool {
	return s == StatusPending || s == StatusContacted
}

// BudgetRange is the prospect's self-reported budget bracket.
type BudgetRange string

const (
	BudgetBelow5k  BudgetRange = "below5k"
	Budget5kTo10k  BudgetRange = "5k-10k"
	Budget10kTo25k BudgetRange = "10k-25k"
	Budget25kTo50k BudgetRange = "25k-50k"
	BudgetAbove50k BudgetRange = "above50k"
)

// PreferredContact is how the prospect asked to be reached.
type PreferredContact string

const (
	ContactByEmail PreferredContact = "email"
	ContactByPhone PreferredContact = "phone"
	ContactByText  PreferredContact = "text"
)

var ErrProspectNotFound = errors.New("prospect not found")
var ErrMissingProspectName = errors.New("first name and last name are required")

// Contact holds the prospect's contact details.
type Contact struct {
	Name             Name             `json:"name" bson:"name"`
	Email            string           `json:"email" bson:"email"`
	Phone            string           `json:"phone" bson:"phone"`
	PreferredContact PreferredContact `json:"preferredContact" bson:"preferred_contact"`
	BusinessName     string           `json:"businessName,omitempty" bson:"business_name,omitempty"`
}

// Goals captures the free-text questionnaire answers.
type Goals struct {
	FinancialGoals string `json:"financialGoals" bson:"financial_goals"`
	Challenges     string `json:"challenges" bson:"challenges"`
}

// Services lists the service identifiers the prospect selected.
type Services struct {
	SelectedServices []string `json:"selectedServices" bson:"selected_services"`
}

// Budget wraps the selected budget bracket.
type Budget struct {
	BudgetRange BudgetRange `json:"budgetRange" bson:"budget_range"`
}

// Prospect is a submitted lead awaiting or having received staff outreach.
type Prospect struct {
	ID        string         `json:"id"`
	Contact   Contact        `json:"contact"`
	Goals     Goals          `json:"goals"`
	Services  Services       `json:"services"`
	Budget    Budget         `json:"budget"`
	Status    ProspectStatus `json:"status"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
