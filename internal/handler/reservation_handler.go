package handler

import (
	"net/http"

	"github.com/Eursukkul/buggy-fleet/internal/csvimport"
	"github.com/Eursukkul/buggy-fleet/internal/dto"
	"github.com/Eursukkul/buggy-fleet/internal/service"
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/reservations")
	r.GET("", h.List)
	r.POST("", h.Create)
	r.POST("/import", h.Import)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
	r.PATCH("/:id/check-in", h.CheckIn)
}

func (h *ReservationHandler) List(c echo.Context) error {
	rows, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ReservationResponse, len(rows))
	for i := range rows {
		resp[i] = dto.ToReservationResponse(&rows[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) Create(c echo.Context) error {
	req, err := bindRow(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Create(c.Request().Context(), req.ToRow())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := bindRow(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Update(c.Request().Context(), id, req.ToRow())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) CheckIn(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	checkedIn := true
	if req.CheckedIn != nil {
		checkedIn = *req.CheckedIn
	}

	res, err := h.svc.CheckIn(c.Request().Context(), id, checkedIn)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	rows, err := csvimport.Read(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.svc.Import(c.Request().Context(), rows)
	if err != nil {
		return httpError(err)
	}

	log.Info("reservations imported", "file", fh.Filename, "rows", n)
	return c.JSON(http.StatusOK, dto.ImportResponse{Imported: n})
}

// bindRow reads the body only, so the :id path param never lands in the row.
func bindRow(c echo.Context) (dto.ReservationRequest, error) {
	var req dto.ReservationRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}
