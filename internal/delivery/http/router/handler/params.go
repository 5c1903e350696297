package handler

import (
	"strconv"

	domainerrors "raidhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam parses a numeric path parameter. Non-numeric ids surface as a
// validation error rather than a routing miss.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
