package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ContactHandler exposes client contact channels under /api/contacts.
type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List handles GET /api/contacts.
//
// @Summary      List all contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {array}  contactResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]contactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, toContactResponse(&contacts[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/contacts/:id.
//
// @Summary      Get a single contact
// @Tags         contacts
// @Produce      json
// @Param        id  path      int  true  "Contact id"
// @Success      200  {object}  contactResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	contact, err := h.contacts.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Create handles POST /api/contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	contact := req.toDomain(0)

	if err := h.contacts.Create(c.Request().Context(), contact); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toContactResponse(contact))
}

// Update handles PUT /api/contacts/:id.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Contact id"
// @Param        body  body      contactRequest  true  "Contact"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	contact := req.toDomain(id)

	if err := h.contacts.Update(c.Request().Context(), contact); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete handles DELETE /api/contacts/:id.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Param        id  path  int  true  "Contact id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.contacts.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
