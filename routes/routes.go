package routes

import (
	"time"

	"doctorsportal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers the liveness and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.Root)
	r.GET("/health", hb.Health.Health)
}

// RegisterCatalogRoutes registers the service catalog and availability endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentServicesOptions", hb.Availability.GetServiceOptions)
	r.GET("/appointmentSpeciality", hb.Availability.GetSpecialities)
	r.POST("/appointmentServices", hb.RequireAuth, hb.RequireAdmin, hb.Availability.AddServiceOffering)
}

// RegisterUserRoutes registers user, role and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.User.IssueTokenHandler)

	api := r.Group("/users")
	{
		api.POST("", hb.User.SaveUserHandler)
		api.GET("", hb.User.GetUsersHandler)
		api.GET("/admin/:email", hb.User.CheckAdminHandler)

		// Protected routes (require an admin token)
		api.PUT("/admin/:id", hb.RequireAuth, hb.RequireAdmin, hb.User.MakeAdminHandler)
	}
}

// RegisterDoctorRoutes registers doctor management endpoints; all require an admin.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctors")
	{
		api.Use(hb.RequireAuth, hb.RequireAdmin)
		api.POST("", hb.Doctor.AddDoctorHandler)
		api.GET("", hb.Doctor.ListDoctorsHandler)
		api.DELETE("/:id", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
