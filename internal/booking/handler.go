package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classbook/internal/api"
	"classbook/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Book a class
// @Description  Creates a confirmed booking, decrementing the class's available slots.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      200 {object} booking.Response
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      422 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/v1/book [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ValidationFailed(err))
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		status, body := classifyError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, created)
}

// @Summary      List bookings by client email
// @Tags         bookings
// @Produce      json
// @Param        client_email query string true "Client email address"
// @Success      200 {object} booking.ListResponse
// @Failure      422 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/v1/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	clientEmail := c.Query("client_email")
	if clientEmail == "" {
		c.JSON(http.StatusUnprocessableEntity, api.NewError(
			"request validation failed",
			"validation_error",
			map[string]interface{}{"client_email": "client_email query parameter is required"},
		))
		return
	}

	bookings, err := h.service.ListByEmail(c.Request.Context(), clientEmail)
	if err != nil {
		logger.Error("failed to list bookings", "client_email", clientEmail, "error", err)
		c.JSON(http.StatusInternalServerError, api.NewError("Failed to retrieve bookings", "internal_server_error", nil))
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func classifyError(err error) (int, api.ErrorResponse) {
	var (
		notFound  *ClassNotFoundError
		noSlots   *NoSlotsAvailableError
		duplicate *DuplicateBookingError
		invalid   *InvalidBookingDataError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, api.NewError(notFound.Error(), notFound.ErrorType(), notFound.Details())
	case errors.As(err, &noSlots):
		return http.StatusConflict, api.NewError(noSlots.Error(), noSlots.ErrorType(), noSlots.Details())
	case errors.As(err, &duplicate):
		return http.StatusConflict, api.NewError(duplicate.Error(), duplicate.ErrorType(), duplicate.Details())
	case errors.As(err, &invalid):
		return http.StatusBadRequest, api.NewError(invalid.Error(), invalid.ErrorType(), invalid.Details())
	default:
		logger.Error("unexpected booking error", "error", err)
		return http.StatusInternalServerError, api.NewError("Failed to create booking", "internal_server_error", nil)
	}
}
