package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/api/metrics"
	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ReportsHandler exposes the derived balance and income reports under
// /api/reports.
type ReportsHandler struct {
	reports ports.ReportsService
}

func NewReportsHandler(reports ports.ReportsService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// ClientBalance handles GET /api/reports/client/:clientId/balance.
//
// @Summary      Aggregate balance of one client
// @Tags         reports
// @Produce      json
// @Param        clientId  path      int  true  "Client id"
// @Success      200       {object}  clientBalanceResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/reports/client/{clientId}/balance [get]
func (h *ReportsHandler) ClientBalance(c echo.Context) error {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	balance, err := h.reports.ClientBalance(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	metrics.ReportsServedTotal.WithLabelValues("client_balance").Inc()

	return c.JSON(http.StatusOK, clientBalanceResponse{
		ClientID:            balance.ClientID,
		ClientFullName:      balance.ClientFullName,
		TotalSessionsPrice:  money(balance.TotalSessionsPrice),
		TotalPaidAmount:     money(balance.TotalPaidAmount),
		Balance:             money(balance.Balance),
		TotalSessionsCount:  balance.TotalSessionsCount,
		PaidSessionsCount:   balance.PaidSessionsCount,
		UnpaidSessionsCount: balance.UnpaidSessionsCount,
	})
}

// IncomeBySessions handles GET /api/reports/income-by-sessions?from=...&to=...
//
// @Summary      Accrual-basis income for a period
// @Tags         reports
// @Produce      json
// @Param        from  query     string  true  "Period start (YYYY-MM-DD, inclusive)"
// @Param        to    query     string  true  "Period end (YYYY-MM-DD, inclusive)"
// @Success      200   {object}  incomeBySessionsResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/reports/income-by-sessions [get]
func (h *ReportsHandler) IncomeBySessions(c echo.Context) error {
	from, to, err := periodParams(c)
	if err != nil {
		return err
	}

	report, err := h.reports.IncomeBySessions(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	metrics.ReportsServedTotal.WithLabelValues("income_by_sessions").Inc()

	return c.JSON(http.StatusOK, incomeBySessionsResponse{
		PeriodFrom:         report.PeriodFrom.String(),
		PeriodTo:           report.PeriodTo.String(),
		TotalSessionsCount: report.TotalSessionsCount,
		TotalIncome:        money(report.TotalIncome),
		PaidIncome:         money(report.PaidIncome),
		UnpaidIncome:       money(report.UnpaidIncome),
	})
}

// IncomeByPayments handles GET /api/reports/income-by-payments?from=...&to=...
//
// @Summary      Cash-basis income for a period
// @Tags         reports
// @Produce      json
// @Param        from  query     string  true  "Period start (YYYY-MM-DD, inclusive)"
// @Param        to    query     string  true  "Period end (YYYY-MM-DD, inclusive)"
// @Success      200   {object}  incomeByPaymentsResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/reports/income-by-payments [get]
func (h *ReportsHandler) IncomeByPayments(c echo.Context) error {
	from, to, err := periodParams(c)
	if err != nil {
		return err
	}

	report, err := h.reports.IncomeByPayments(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	metrics.ReportsServedTotal.WithLabelValues("income_by_payments").Inc()

	return c.JSON(http.StatusOK, incomeByPaymentsResponse{
		PeriodFrom:         report.PeriodFrom.String(),
		PeriodTo:           report.PeriodTo.String(),
		TotalPaymentsCount: report.TotalPaymentsCount,
		TotalIncome:        money(report.TotalIncome),
	})
}

// periodParams reads the inclusive from/to query range shared by the income
// reports and rejects inverted ranges.
func periodParams(c echo.Context) (domain.Date, domain.Date, error) {
	from, err := parseDate("from", c.QueryParam("from"))
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	to, err := parseDate("to", c.QueryParam("to"))
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	if to.Before(from.Time) {
		return domain.Date{}, domain.Date{}, echo.NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}
	return from, to, nil
}
