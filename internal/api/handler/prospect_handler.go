package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type ProspectHandler struct {
	prospectService ports.ProspectService
}

func NewProspectHandler(prospectService ports.ProspectService) *ProspectHandler {
	return &ProspectHandler{prospectService: prospectService}
}

// Create accepts a public questionnaire submission. No authentication is
// required; the status is always set server-side to pending.
//
// @Summary      Submit a prospect questionnaire
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        body  body      createProspectRequest  true  "Questionnaire"
// @Success      201   {object}  domain.Prospect
// @Failure      400   {object}  map[string]string
// @Router       /prospects [post]
func (h *ProspectHandler) Create(c echo.Context) error {
	var req createProspectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prospect, err := h.prospectService.Create(c.Request().Context(), toCreateProspectInput(&req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, prospect)
}

// List returns every prospect, newest first.
//
// @Summary      List prospects
// @Tags         prospects
// @Produce      json
// @Success      200  {array}   domain.Prospect
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /prospects [get]
func (h *ProspectHandler) List(c echo.Context) error {
	prospects, err := h.prospectService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prospects)
}

// Update applies a partial update to a prospect.
//
// @Summary      Update a prospect
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Prospect ID"
// @Param        body  body      updateProspectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Prospect
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /prospects/{id} [put]
func (h *ProspectHandler) Update(c echo.Context) error {
	var req updateProspectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prospect, err := h.prospectService.Update(c.Request().Context(), c.Param("id"), toUpdateProspectInput(&req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prospect)
}

// Delete removes a prospect.
//
// @Summary      Delete a prospect
// @Tags         prospects
// @Produce      json
// @Param        id  path      string  true  "Prospect ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /prospects/{id} [delete]
func (h *ProspectHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.prospectService.Remove(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Prospect %s has been successfully deleted", id),
	})
}
