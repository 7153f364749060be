package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// SessionHandler exposes billable sessions under /api/sessions.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List handles GET /api/sessions.
//
// @Summary      List all sessions
// @Tags         sessions
// @Produce      json
// @Success      200  {array}  sessionResponse
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.sessions.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]sessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/sessions/:id.
//
// @Summary      Get a single session
// @Tags         sessions
// @Produce      json
// @Param        id  path      int  true  "Session id"
// @Success      200  {object}  sessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	session, err := h.sessions.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Create handles POST /api/sessions.
//
// @Summary      Create a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Session"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	session, err := req.toDomain(0)
	if err != nil {
		return err
	}

	if err := h.sessions.Create(c.Request().Context(), session); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Update handles PUT /api/sessions/:id.
//
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Session id"
// @Param        body  body      sessionRequest  true  "Session"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/sessions/{id} [put]
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	session, err := req.toDomain(id)
	if err != nil {
		return err
	}

	if err := h.sessions.Update(c.Request().Context(), session); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Delete handles DELETE /api/sessions/:id.
//
// @Summary      Delete a session and its allocations
// @Tags         sessions
// @Param        id  path  int  true  "Session id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.sessions.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
