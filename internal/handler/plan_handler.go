package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/dto"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/labstack/echo/v4"
)

type PlanHandler struct {
	plans service.PlanService
	fleet service.FleetService
}

func NewPlanHandler(plans service.PlanService, fleet service.FleetService) *PlanHandler {
	return &PlanHandler{plans: plans, fleet: fleet}
}

func (h *PlanHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/plan", h.GetPlan)
	g.GET("/plan/slots", h.GetSlots)
	g.GET("/fleet", h.GetFleet)
	g.PUT("/fleet", h.UpdateFleet)
}

func (h *PlanHandler) GetPlan(c echo.Context) error {
	plan, err := h.build(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) GetSlots(c echo.Context) error {
	plan, err := h.build(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToSlotsResponse(plan.Report))
}

func (h *PlanHandler) GetFleet(c echo.Context) error {
	fleet, err := h.fleet.Current(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToFleetResponse(fleet))
}

func (h *PlanHandler) UpdateFleet(c echo.Context) error {
	var req dto.FleetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.TwoSeatStock == nil || req.OneSeatStock == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "two_seat_stock and one_seat_stock are required")
	}

	fleet, err := h.fleet.Update(c.Request().Context(), allocation.Fleet{TwoSeat: *req.TwoSeatStock, OneSeat: *req.OneSeatStock})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToFleetResponse(fleet))
}

// build applies the optional two_seat_stock / one_seat_stock query overrides on
// top of the current fleet for this request only.
func (h *PlanHandler) build(c echo.Context) (*allocation.Plan, error) {
	ctx := c.Request().Context()

	two, err := stockParam(c, "two_seat_stock")
	if err != nil {
		return nil, err
	}
	one, err := stockParam(c, "one_seat_stock")
	if err != nil {
		return nil, err
	}

	var override *allocation.Fleet
	if two != nil || one != nil {
		fleet, err := h.fleet.Current(ctx)
		if err != nil {
			return nil, httpError(err)
		}
		if two != nil {
			fleet.TwoSeat = *two
		}
		if one != nil {
			fleet.OneSeat = *one
		}
		override = &fleet
	}

	plan, err := h.plans.BuildPlan(ctx, override)
	if err != nil {
		return nil, httpError(err)
	}
	return plan, nil
}

func stockParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return &n, nil
}
