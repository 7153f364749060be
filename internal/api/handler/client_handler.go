package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ClientHandler exposes the client roster under /api/clients.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  clientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]clientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a single client
// @Tags         clients
// @Produce      json
// @Param        id  path      int  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	client, err := req.toDomain(0)
	if err != nil {
		return err
	}

	if err := h.clients.Create(c.Request().Context(), client); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PUT /api/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Client id"
// @Param        body  body      clientRequest  true  "Client"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	client, err := req.toDomain(id)
	if err != nil {
		return err
	}

	if err := h.clients.Update(c.Request().Context(), client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /api/clients/:id.
//
// @Summary      Delete a client and its dependent records
// @Tags         clients
// @Param        id  path  int  true  "Client id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
