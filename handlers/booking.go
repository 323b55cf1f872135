package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
	DateLayout     string
}

func NewBookingHandler(svc booking.BookingService, dateLayout string) *BookingHandler {
	return &BookingHandler{BookingService: svc, DateLayout: dateLayout}
}

// CreateBooking handles POST /bookings. A rejected request is still a 200
// with acknowledged=false and a message.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}
	date, err := utils.ValidateDate(req.AppointmentDate, h.DateLayout)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment date", err.Error())
		return
	}
	req.AppointmentDate = date

	res, err := h.BookingService.RequestBooking(c.Request.Context(), req)
	if err != nil {
		logger.Error("booking admission failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, err := h.BookingService.GetBooking(c.Request.Context(), id)
	switch {
	case errors.Is(err, booking.ErrInvalidBookingID):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), id)
		return
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), id)
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookings handles GET /bookings?email=. Callers may only list their own bookings.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required", "")
		return
	}
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	bookings, err := h.BookingService.ListUserBookings(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("booking listing failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
