package routes

import (
	"doctorsportal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers admission and booking lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/bookings")
	{
		booking.POST("", hb.Booking.CreateBooking)
		booking.GET("/:id", hb.Booking.GetBooking)
		booking.GET("", hb.RequireAuth, hb.Booking.ListUserBookings)
	}
}

// RegisterPaymentRoutes registers the payment intent and finalization endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreatePaymentIntentHandler)
	r.POST("/payments", hb.Payment.FinalizePaymentHandler)
}
