package class

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classbook/internal/api"
	"classbook/internal/logger"
	"classbook/internal/timezone"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List upcoming classes
// @Description  Returns active future classes ordered by start time, with datetimes in the requested timezone.
// @Tags         classes
// @Produce      json
// @Param        timezone query string false "IANA timezone for display (defaults to the reference timezone)"
// @Success      200 {array} class.Response
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/v1/classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	displayTimezone := c.Query("timezone")

	classes, err := h.service.ListUpcoming(c.Request.Context(), displayTimezone)
	if err != nil {
		if errors.Is(err, timezone.ErrInvalidTimezone) {
			c.JSON(http.StatusBadRequest, api.NewError(
				"unknown timezone",
				"invalid_timezone",
				map[string]interface{}{"timezone": displayTimezone},
			))
			return
		}
		logger.Error("failed to list classes", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewError("Failed to retrieve classes", "internal_server_error", nil))
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Create a class
// @Description  Administrative: create a new fitness class.
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      201 {object} class.Response
// @Failure      400 {object} api.ErrorResponse
// @Failure      422 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/v1/admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ValidationFailed(err))
		return
	}

	created, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidClassData) {
			c.JSON(http.StatusBadRequest, api.NewError(err.Error(), "invalid_class_data", nil))
			return
		}
		logger.Error("failed to create class", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewError("Failed to create class", "internal_server_error", nil))
		return
	}

	c.JSON(http.StatusCreated, created)
}
