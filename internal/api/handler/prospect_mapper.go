package handler

import (
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

func toCreateProspectInput(req *createProspectRequest) ports.CreateProspectInput {
	return ports.CreateProspectInput{
		Contact:  toContactInput(&req.Contact),
		Goals:    ports.GoalsInput{FinancialGoals: req.Goals.FinancialGoals, Challenges: req.Goals.Challenges},
		Services: ports.ServicesInput{SelectedServices: req.Services.SelectedServices},
		Budget:   ports.BudgetInput{BudgetRange: req.Budget.BudgetRange},
		Notes:    req.Notes,
	}
}

func toUpdateProspectInput(req *updateProspectRequest) ports.UpdateProspectInput {
	input := ports.UpdateProspectInput{
		Status: req.Status,
		Notes:  req.Notes,
	}
	if req.Contact != nil {
		contact := toContactInput(req.Contact)
		input.Contact = &contact
	}
	if req.Goals != nil {
		input.Goals = &ports.GoalsInput{FinancialGoals: req.Goals.FinancialGoals, Challenges: req.Goals.Challenges}
	}
	if req.Services != nil {
		input.Services = &ports.ServicesInput{SelectedServices: req.Services.SelectedServices}
	}
	if req.Budget != nil {
		input.Budget = &ports.BudgetInput{BudgetRange: req.Budget.BudgetRange}
	}
	return input
}

func toContactInput(req *contactRequest) ports.ContactInput {
	return ports.ContactInput{
		Name: ports.NameInput{
			FirstName: req.Name.FirstName,
			LastName:  req.Name.LastName,
		},
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredContact: req.PreferredContact,
		BusinessName:     req.BusinessName,
	}
}
