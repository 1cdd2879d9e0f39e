package handler

import "github.com/AlexMorrow239/zomma-prototype/internal/core/domain"

type nameRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50,person_name"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=50,person_name"`
}

type registerRequest struct {
	Email    string      `json:"email"    validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Name     nameRequest `json:"name"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

// userSummary is the flattened user view returned alongside a token.
type userSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserSummary(u *domain.User) userSummary {
	return userSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.Name.FirstName,
		LastName:  u.Name.LastName,
	}
}
