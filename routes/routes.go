package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"varahicare/handlers"
)

// RegisterPublicRoutes registers the customer-facing endpoints: catalog,
// workshop info, symptom triage, and booking submission.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.GetServicesHandler)
		api.GET("/workshop", hb.GetWorkshopHandler)
		api.POST("/diagnostics", hb.AnalyzeProblemHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
	}
}

// RegisterAdminRoutes registers the booking triage endpoints. There is
// no access control on this group.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/bookings", hb.ListBookingsHandler)
		api.PUT("/bookings/:id/advance", hb.AdvanceBookingHandler)
		api.PUT("/bookings/:id/cancel", hb.CancelBookingHandler)
		api.DELETE("/bookings/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": hb.StorageBackend})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
