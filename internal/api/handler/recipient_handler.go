package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type RecipientHandler struct {
	recipientService ports.RecipientService
}

func NewRecipientHandler(recipientService ports.RecipientService) *RecipientHandler {
	return &RecipientHandler{recipientService: recipientService}
}

// Create adds an address to the notification distribution list.
//
// @Summary      Add a notification recipient
// @Tags         email-recipients
// @Accept       json
// @Produce      json
// @Param        body  body      createRecipientRequest  true  "Recipient details"
// @Success      201   {object}  domain.EmailRecipient
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /email-recipients [post]
func (h *RecipientHandler) Create(c echo.Context) error {
	var req createRecipientRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CreateRecipientInput{
		Email:       req.Email,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Active != nil {
		active := bool(*req.Active)
		input.Active = &active
	}

	recipient, err := h.recipientService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, recipient)
}

// List returns every recipient on the distribution list.
//
// @Summary      List notification recipients
// @Tags         email-recipients
// @Produce      json
// @Success      200  {array}  domain.EmailRecipient
// @Security     BearerAuth
// @Router       /email-recipients [get]
func (h *RecipientHandler) List(c echo.Context) error {
	recipients, err := h.recipientService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recipients)
}

// Get returns a single recipient by ID.
//
// @Summary      Get a notification recipient
// @Tags         email-recipients
// @Produce      json
// @Param        id  path      string  true  "Recipient ID"
// @Success      200  {object}  domain.EmailRecipient
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /email-recipients/{id} [get]
func (h *RecipientHandler) Get(c echo.Context) error {
	recipient, err := h.recipientService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recipient)
}

// Update applies a partial update to a recipient.
//
// @Summary      Update a notification recipient
// @Tags         email-recipients
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Recipient ID"
// @Param        body  body      updateRecipientRequest  true  "Fields to update"
// @Success      200   {object}  domain.EmailRecipient
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /email-recipients/{id} [put]
func (h *RecipientHandler) Update(c echo.Context) error {
	var req updateRecipientRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateRecipientInput{
		Email:       req.Email,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Active != nil {
		active := bool(*req.Active)
		input.Active = &active
	}

	recipient, err := h.recipientService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recipient)
}

// Delete removes a recipient from the distribution list.
//
// @Summary      Delete a notification recipient
// @Tags         email-recipients
// @Produce      json
// @Param        id  path      string  true  "Recipient ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /email-recipients/{id} [delete]
func (h *RecipientHandler) Delete(c echo.Context) error {
	if err := h.recipientService.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Recipient deleted successfully"})
}
