package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/ports"
)

// RoomHandler handles HTTP requests for the room registry.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /rooms?status=&type=.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        type    query     string  false  "Filter by room type"
// @Success      200     {array}   domain.Room
// @Failure      403     {object}  errorResponse
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rooms, err := h.service.List(c.Request().Context(), ports.ListRoomsInput{
		Principal: principal,
		Status:    c.QueryParam("status"),
		Type:      c.QueryParam("type"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	room, err := h.service.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create handles POST /rooms.
//
// @Summary      Register a new room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		Principal:   principal,
		Number:      req.Number,
		Type:        req.Type,
		MonthlyRate: req.MonthlyRate,
		Status:      req.Status,
		Amenities:   req.Amenities,
		RenterID:    req.RenterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /rooms/:id.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room id"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Update(c.Request().Context(), ports.UpdateRoomInput{
		Principal:   principal,
		ID:          c.Param("id"),
		Number:      req.Number,
		Type:        req.Type,
		MonthlyRate: req.MonthlyRate,
		Status:      req.Status,
		Amenities:   req.Amenities,
		RenterID:    req.RenterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /rooms/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "room deleted"})
}

// Statistics handles GET /rooms/statistics/dashboard.
func (h *RoomHandler) Statistics(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Statistics(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
