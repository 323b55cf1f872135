package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	PaymentService payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentService: svc}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid price", err.Error())
		return
	}
	secret, err := h.PaymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// FinalizePaymentHandler handles POST /payments.
func (h *PaymentHandler) FinalizePaymentHandler(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment", err.Error())
		return
	}
	res, err := h.PaymentService.Finalize(c.Request.Context(), p)
	switch {
	case errors.Is(err, payment.ErrInvalidPayment):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	case errors.Is(err, payment.ErrUnknownBooking):
		utils.JSONError(c, http.StatusNotFound, err.Error(), p.BookingID)
		return
	case errors.Is(err, payment.ErrBookingNotUpdated):
		// The payment exists; report its id so the client does not pay twice.
		getLogger(c).Error("payment finalization incomplete", zap.String("bookingID", p.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":    err.Error(),
			"insertedId": res.InsertedID,
		})
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}
