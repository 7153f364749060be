package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// Monetary values cross the wire as decimal strings ("1500.00"), never as
// binary floating point. Responses always render two fractional digits.

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// parseMoney parses a request amount field. The engine enforces sign rules;
// this only rejects strings that are not decimal numbers at all.
func parseMoney(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, echo.NewHTTPError(http.StatusBadRequest,
			field+" must be a decimal number string, e.g. \"1500.00\"")
	}
	return d, nil
}

// parseDate parses a request date field in the YYYY-MM-DD layout.
func parseDate(field, s string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, echo.NewHTTPError(http.StatusBadRequest,
			field+" must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
