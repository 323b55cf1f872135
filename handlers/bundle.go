package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	User         *UserHandler
	Doctor       *DoctorHandler
	Payment      *PaymentHandler
	Health       *HealthHandler

	// RequireAuth verifies the bearer token; RequireAdmin must follow it.
	RequireAuth  gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
}
