package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

func serveError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_SentinelStatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrSessionNotFound, http.StatusNotFound},
		{domain.ErrPaymentNotFound, http.StatusNotFound},
		{domain.ErrAllocationNotFound, http.StatusNotFound},
		{domain.ErrUnknownClient, http.StatusBadRequest},
		{domain.ErrEmptyAssignments, http.StatusBadRequest},
		{domain.ErrNonPositiveAmount, http.StatusBadRequest},
		{domain.ErrCapacityExceeded, http.StatusUnprocessableEntity},
		{domain.ErrConflict, http.StatusConflict},
	}
	for _, tt := range tests {
		code, _ := serveError(t, tt.err)
		if code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, code, tt.want)
		}
	}
}

func TestErrorHandler_WrappedSentinel(t *testing.T) {
	code, _ := serveError(t, fmt.Errorf("session 3: %w", domain.ErrNonPositiveAmount))
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestErrorHandler_SessionsNotFoundDetails(t *testing.T) {
	code, body := serveError(t, &domain.SessionsNotFoundError{MissingIDs: []int64{5, 9}})
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	ids, ok := body.Details["missingSessionIds"].([]any)
	if !ok || len(ids) != 2 {
		t.Fatalf("missingSessionIds = %v, want two ids", body.Details["missingSessionIds"])
	}
}

func TestErrorHandler_CapacityExceededDetails(t *testing.T) {
	capErr := &domain.CapacityExceededError{
		PaymentID:       7,
		Requested:       decimal.RequireFromString("250"),
		PaymentAmount:   decimal.RequireFromString("200"),
		AlreadyAssigned: decimal.RequireFromString("0"),
		Headroom:        decimal.RequireFromString("200"),
	}
	code, body := serveError(t, capErr)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", code)
	}
	if body.Details["requestedAmount"] != "250.00" || body.Details["remainingAmount"] != "200.00" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, body := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "duration must be positive"))
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if body.Error != "duration must be positive" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	code, body := serveError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if body.Error != "internal server error" {
		t.Errorf("error = %q, internals must not leak", body.Error)
	}
}
