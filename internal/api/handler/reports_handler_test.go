package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

func TestReportsHandler_ClientBalance(t *testing.T) {
	e := newEcho()
	reports := &stubReportsService{
		clientBalanceFn: func(_ context.Context, clientID int64) (*ports.ClientBalance, error) {
			return &ports.ClientBalance{
				ClientID:            clientID,
				ClientFullName:      "Anna Kovacs",
				TotalSessionsPrice:  mustDec("120"),
				TotalPaidAmount:     mustDec("200"),
				Balance:             mustDec("80"),
				TotalSessionsCount:  1,
				UnpaidSessionsCount: 1,
			}, nil
		},
	}
	h := NewReportsHandler(reports)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/client/4/balance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("clientId")
	c.SetParamValues("4")

	if err := h.ClientBalance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientFullName"] != "Anna Kovacs" || resp["balance"] != "80.00" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReportsHandler_IncomeBySessions(t *testing.T) {
	e := newEcho()
	reports := &stubReportsService{
		bySessionsFn: func(_ context.Context, from, to domain.Date) (*ports.IncomeBySessions, error) {
			if from.String() != "2026-03-01" || to.String() != "2026-03-31" {
				t.Fatalf("period = %s..%s", from, to)
			}
			return &ports.IncomeBySessions{
				PeriodFrom:         from,
				PeriodTo:           to,
				TotalSessionsCount: 3,
				TotalIncome:        mustDec("450"),
				PaidIncome:         mustDec("300"),
				UnpaidIncome:       mustDec("150"),
			}, nil
		},
	}
	h := NewReportsHandler(reports)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/income-by-sessions?from=2026-03-01&to=2026-03-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IncomeBySessions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["periodFrom"] != "2026-03-01" || resp["totalIncome"] != "450.00" || resp["unpaidIncome"] != "150.00" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReportsHandler_IncomeByPayments_MissingParams(t *testing.T) {
	e := newEcho()
	h := NewReportsHandler(&stubReportsService{
		byPaymentsFn: func(context.Context, domain.Date, domain.Date) (*ports.IncomeByPayments, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/income-by-payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.IncomeByPayments(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestPeriodParams_InvertedRange(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/income-by-payments?from=2026-03-31&to=2026-03-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, _, err := periodParams(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestPeriodParams_SingleDayRange(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/income-by-payments?from=2026-03-15&to=2026-03-15", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	from, to, err := periodParams(c)
	if err != nil {
		t.Fatalf("periodParams: %v", err)
	}
	want := domain.NewDate(2026, time.March, 15)
	if !from.Equal(want.Time) || !to.Equal(want.Time) {
		t.Fatalf("period = %s..%s, want single day 2026-03-15", from, to)
	}
}
