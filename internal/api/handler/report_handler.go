package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/ports"
)

// ReportHandler serves the combined admin dashboard.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /reports/dashboard?month=&year=.
//
// @Summary      Combined occupancy and payment dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        month  query     int  false  "Billing month (defaults to current)"
// @Param        year   query     int  false  "Billing year (defaults to current)"
// @Success      200    {object}  domain.Dashboard
// @Failure      403    {object}  errorResponse
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))

	dashboard, err := h.service.Dashboard(c.Request().Context(), principal, month, year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
