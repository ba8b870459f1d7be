package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/labstack/echo/v4"
)

func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, service.ErrReservationNotFound.Error())
	case errors.Is(err, service.ErrInvalidStock),
		errors.Is(err, service.ErrEmptyImport),
		errors.Is(err, service.ErrMissingExternalRef):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, service.ErrStoreUnavailable.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return uint(id), nil
}
