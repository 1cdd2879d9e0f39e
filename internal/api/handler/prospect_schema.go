package handler

// --- Request types ---

type contactRequest struct {
	Name             nameRequest `json:"name"             validate:"required"`
	Email            string      `json:"email"            validate:"required,email"`
	Phone            string      `json:"phone"            validate:"required,phone"`
	PreferredContact string      `json:"preferredContact" validate:"required,oneof=email phone text"`
	BusinessName     string      `json:"businessName,omitempty" validate:"omitempty,min=2,max=100"`
}

type goalsRequest struct {
	FinancialGoals string `json:"financialGoals" validate:"required,min=10,max=1000"`
	Challenges     string `json:"challenges"     validate:"required,min=10,max=1000"`
}

type servicesRequest struct {
	SelectedServices []string `json:"selectedServices" validate:"required,min=1,dive,required"`
}

type budgetRequest struct {
	BudgetRange string `json:"budgetRange" validate:"required,oneof=below5k 5k-10k 10k-25k 25k-50k above50k"`
}

type createProspectRequest struct {
	Contact  contactRequest  `json:"contact"  validate:"required"`
	Goals    goalsRequest    `json:"goals"    validate:"required"`
	Services servicesRequest `json:"services" validate:"required"`
	Budget   budgetRequest   `json:"budget"   validate:"required"`
	Notes    string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// updateProspectRequest is a partial update: nil blocks are left untouched,
// present blocks run the same validators as create.
type updateProspectRequest struct {
	Contact  *contactRequest  `json:"contact"`
	Goals    *goalsRequest    `json:"goals"`
	Services *servicesRequest `json:"services"`
	Budget   *budgetRequest   `json:"budget"`
	Status   *string          `json:"status" validate:"omitempty,oneof=pending contacted"`
	Notes    *string          `json:"notes"  validate:"omitempty,max=1000"`
}
