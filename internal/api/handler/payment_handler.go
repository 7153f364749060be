package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// PaymentHandler exposes received payments under /api/payments.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// List handles GET /api/payments.
//
// @Summary      List all payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}  paymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.payments.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/payments/:id.
//
// @Summary      Get a single payment
// @Tags         payments
// @Produce      json
// @Param        id  path      int  true  "Payment id"
// @Success      200  {object}  paymentResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Create handles POST /api/payments.
//
// @Summary      Record a received payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      201   {object}  paymentResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	payment, err := req.toDomain(0)
	if err != nil {
		return err
	}

	if err := h.payments.Create(c.Request().Context(), payment); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// Update handles PUT /api/payments/:id.
//
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Payment id"
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      200   {object}  paymentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	payment, err := req.toDomain(id)
	if err != nil {
		return err
	}

	if err := h.payments.Update(c.Request().Context(), payment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Delete handles DELETE /api/payments/:id.
//
// @Summary      Delete a payment and its allocations
// @Tags         payments
// @Param        id  path  int  true  "Payment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.payments.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
