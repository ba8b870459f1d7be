package middleware

import (
	"net/http"

	"github.com/Eursukkul/buggy-fleet/internal/dto"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		log.Error(err, "request failed", "method", c.Request().Method, "uri", c.Request().RequestURI)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
