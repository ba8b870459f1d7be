package main

import (
	"net/http"

	"github.com/Eursukkul/buggy-fleet/internal/handler"
	"github.com/Eursukkul/buggy-fleet/internal/middleware"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type services struct {
	auth         service.AuthService
	plans        service.PlanService
	fleet        service.FleetService
	reservations service.ReservationService
}

func newServer(svc services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "fleet-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewAuthHandler(svc.auth).RegisterRoutes(e)

	api := e.Group("/api/v1", middleware.BearerAuth(svc.auth))
	handler.NewPlanHandler(svc.plans, svc.fleet).RegisterRoutes(api)
	handler.NewReservationHandler(svc.reservations).RegisterRoutes(api)

	return e
}
