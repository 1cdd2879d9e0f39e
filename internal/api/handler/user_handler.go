package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name  *nameRequest `json:"name"`
	Email *string      `json:"email" validate:"omitempty,email"`
}

// GetProfile returns the authenticated user's profile.
//
// @Summary      Get user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial name/email update. Password changes go
// through the auth change-password endpoint instead.
//
// @Summary      Update user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Partial profile update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	update := ports.UpdateUserInput{Email: req.Email}
	if req.Name != nil {
		update.Name = &ports.NameInput{
			FirstName: req.Name.FirstName,
			LastName:  req.Name.LastName,
		}
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
