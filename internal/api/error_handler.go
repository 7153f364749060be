package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// carries the structured fields (ids, amounts) a client needs to correct the
// request without a follow-up query.
type errorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to deterministic status codes, logs unexpected errors without
// leaking their details, and always renders the same JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Structured engine errors carry their offending ids and amounts.
	var sessionsMissing *domain.SessionsNotFoundError
	if errors.As(err, &sessionsMissing) {
		return http.StatusNotFound, errorResponse{
			Error:   sessionsMissing.Error(),
			Details: map[string]any{"missingSessionIds": sessionsMissing.MissingIDs},
		}
	}
	var mismatch *domain.ClientMismatchError
	if errors.As(err, &mismatch) {
		return http.StatusBadRequest, errorResponse{
			Error: mismatch.Error(),
			Details: map[string]any{
				"paymentId":          mismatch.PaymentID,
				"mismatchSessionIds": mismatch.SessionIDs,
			},
		}
	}
	var capacity *domain.CapacityExceededError
	if errors.As(err, &capacity) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error: capacity.Error(),
			Details: map[string]any{
				"paymentId":       capacity.PaymentID,
				"requestedAmount": capacity.Requested.StringFixed(2),
				"paymentAmount":   capacity.PaymentAmount.StringFixed(2),
				"alreadyAssigned": capacity.AlreadyAssigned.StringFixed(2),
				"remainingAmount": capacity.Headroom.StringFixed(2),
			},
		}
	}

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrContactNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrAllocationNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrUnknownClient),
		errors.Is(err, domain.ErrEmptyAssignments),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrClientMismatch):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
