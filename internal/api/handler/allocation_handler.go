package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/api/metrics"
	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// AllocationHandler exposes the payment-allocation engine and the per-session
// balance view under /api/session-payments.
type AllocationHandler struct {
	allocations ports.AllocationService
	reports     ports.ReportsService
}

func NewAllocationHandler(allocations ports.AllocationService, reports ports.ReportsService) *AllocationHandler {
	return &AllocationHandler{allocations: allocations, reports: reports}
}

// Assign handles POST /api/session-payments/assign.
//
// @Summary      Assign a payment to one or more sessions
// @Tags         session-payments
// @Accept       json
// @Produce      json
// @Param        body  body      assignPaymentRequest  true  "Payment id and session assignments"
// @Success      200   {object}  assignPaymentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/session-payments/assign [post]
func (h *AllocationHandler) Assign(c echo.Context) error {
	var req assignPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.AssignPaymentInput{PaymentID: req.PaymentID}
	for _, a := range req.Assignments {
		amount, err := parseMoney("amount", a.Amount)
		if err != nil {
			return err
		}
		in.Assignments = append(in.Assignments, ports.SessionAssignment{
			SessionID: a.SessionID,
			Amount:    amount,
		})
	}

	result, err := h.allocations.AssignPayment(c.Request().Context(), in)
	if err != nil {
		metrics.AllocationRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}
	metrics.AllocationsAssignedTotal.Add(float64(result.AssignedSessionsCount))

	return c.JSON(http.StatusOK, assignPaymentResponse{
		TotalAssignedAmount:    money(result.TotalAssignedAmount),
		RemainingPaymentAmount: money(result.RemainingPaymentAmount),
		AssignedSessionsCount:  result.AssignedSessionsCount,
	})
}

// Edit handles PUT /api/session-payments/:id.
//
// @Summary      Change the amount of an existing allocation
// @Tags         session-payments
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Allocation id"
// @Param        body  body      editAllocationRequest  true  "New amount"
// @Success      200   {object}  editAllocationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/session-payments/{id} [put]
func (h *AllocationHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req editAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	newAmount, err := parseMoney("newAmount", req.NewAmount)
	if err != nil {
		return err
	}

	result, err := h.allocations.EditAllocation(c.Request().Context(), id, newAmount)
	if err != nil {
		metrics.AllocationRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	return c.JSON(http.StatusOK, editAllocationResponse{
		AllocationID:           result.AllocationID,
		OldAmount:              money(result.OldAmount),
		NewAmount:              money(result.NewAmount),
		RemainingPaymentAmount: money(result.RemainingPaymentAmount),
	})
}

// Delete handles DELETE /api/session-payments/:id.
//
// @Summary      Delete an allocation
// @Tags         session-payments
// @Param        id  path  int  true  "Allocation id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/session-payments/{id} [delete]
func (h *AllocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.allocations.DeleteAllocation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "allocation not found")
	}
	metrics.AllocationsDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /api/session-payments/:id.
//
// @Summary      Get a single allocation
// @Tags         session-payments
// @Produce      json
// @Param        id  path      int  true  "Allocation id"
// @Success      200  {object}  allocationResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/session-payments/{id} [get]
func (h *AllocationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.allocations.GetAllocation(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allocationResponse{
		ID:        detail.ID,
		SessionID: detail.SessionID,
		PaymentID: detail.PaymentID,
		Amount:    money(detail.Amount),
	})
}

// SessionBalance handles GET /api/session-payments/session/:sessionId/balance.
//
// @Summary      Payment status of a single session
// @Tags         session-payments
// @Produce      json
// @Param        sessionId  path      int  true  "Session id"
// @Success      200        {object}  sessionBalanceResponse
// @Failure      404        {object}  map[string]string
// @Router       /api/session-payments/session/{sessionId}/balance [get]
func (h *AllocationHandler) SessionBalance(c echo.Context) error {
	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		return err
	}

	balance, err := h.reports.SessionBalance(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	metrics.ReportsServedTotal.WithLabelValues("session_balance").Inc()

	return c.JSON(http.StatusOK, sessionBalanceResponse{
		SessionID:       balance.SessionID,
		SessionPrice:    money(balance.Price),
		PaidAmount:      money(balance.PaidAmount),
		RemainingAmount: money(balance.RemainingAmount),
		IsPaid:          balance.IsPaid,
	})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrAllocationNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrEmptyAssignments),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrClientMismatch):
		return "invalid_argument"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	}
	return "other"
}
