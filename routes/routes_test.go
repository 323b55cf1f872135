package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_ProtectsAdminAndOwnerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	hb := &handlers.HandlerBundle{
		Availability: &handlers.AvailabilityHandler{},
		Booking:      &handlers.BookingHandler{},
		User:         &handlers.UserHandler{},
		Doctor:       &handlers.DoctorHandler{},
		Payment:      &handlers.PaymentHandler{},
		Health:       handlers.NewHealthHandler(nil),
		RequireAuth:  deny,
		RequireAdmin: deny,
	}
	r := gin.New()
	RegisterRoutes(r, hb)

	protected := []struct{ method, path string }{
		{http.MethodPost, "/appointmentServices"},
		{http.MethodGet, "/bookings?email=a@x.com"},
		{http.MethodPut, "/users/admin/65a000000000000000000001"},
		{http.MethodPost, "/doctors"},
		{http.MethodGet, "/doctors"},
		{http.MethodDelete, "/doctors/65a000000000000000000001"},
	}
	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Doctors Portal Server Running", rec.Body.String())
}
