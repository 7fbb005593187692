package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kosapp/kos-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// PaymentHandler handles HTTP requests for the payment ledger.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /payments?status=&month=&year=&room_id=.
// Renters only ever receive their own payments; the scoping happens in the
// service layer regardless of the query parameters sent.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "Filter by status"
// @Param        month    query     int     false  "Filter by month (with year)"
// @Param        year     query     int     false  "Filter by year (with month)"
// @Param        room_id  query     string  false  "Filter by room"
// @Success      200      {array}   domain.Payment
// @Failure      403      {object}  errorResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))

	payments, err := h.service.List(c.Request().Context(), ports.ListPaymentsInput{
		Principal: principal,
		Status:    c.QueryParam("status"),
		Month:     month,
		Year:      year,
		RoomID:    c.QueryParam("room_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Get handles GET /payments/:id.
func (h *PaymentHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payment, err := h.service.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Create handles POST /payments.
//
// @Summary      Record a new rent bill
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Bill details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		Principal: principal,
		RoomID:    req.RoomID,
		RenterID:  req.RenterID,
		Month:     req.Month,
		Year:      req.Year,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// Update handles PUT /payments/:id.
//
// @Summary      Update a rent bill
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Payment id"
// @Param        body  body      updatePaymentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		d, err := time.Parse(dateLayout, *req.PaymentDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "payment_date must use YYYY-MM-DD")
		}
		paymentDate = &d
	}

	payment, err := h.service.Update(c.Request().Context(), ports.UpdatePaymentInput{
		Principal:   principal,
		ID:          c.Param("id"),
		Status:      req.Status,
		PaymentDate: paymentDate,
		Amount:      req.Amount,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// ListByRoom handles GET /payments/room/:room_id.
func (h *PaymentHandler) ListByRoom(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payments, err := h.service.ListByRoom(c.Request().Context(), principal, c.Param("room_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Report handles GET /payments/report/dashboard?month=&year=.
// Defaults to the current period when no query parameters are given.
func (h *PaymentHandler) Report(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	report, err := h.service.MonthlyReport(c.Request().Context(), principal, month, year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
