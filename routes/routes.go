package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petclinic/handlers"
)

// RegisterBookingRoutes sets up the endpoints for the reservation wizard.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", bh.StartSession)
		api.GET("/session/:sessionID", bh.GetSession)
		api.PUT("/session/:sessionID/client", bh.SubmitClientInfo)
		api.PUT("/session/:sessionID/pet", bh.SubmitPetInfo)
		api.PUT("/session/:sessionID/details", bh.SubmitReservationInfo)
		api.PUT("/session/:sessionID/back", bh.GoBack)
		api.POST("/session/:sessionID/confirm", bh.Confirm)
		api.DELETE("/session/:sessionID", bh.CancelSession)
		api.GET("/availability", bh.GetAvailability)
	}
}

// RegisterReservationRoutes sets up tracking and lifecycle endpoints.
func RegisterReservationRoutes(r *gin.Engine, rh *handlers.ReservationHandler) {
	api := r.Group("/api/reservations")
	{
		api.GET("", rh.Track)
		api.GET("/schedule", rh.Schedule)
		api.PUT("/:id/status", rh.UpdateStatus)
	}
}

// RegisterReferenceRoutes sets up the read-only directory endpoints.
func RegisterReferenceRoutes(r *gin.Engine, fh *handlers.ReferenceHandler) {
	r.GET("/api/doctors", fh.ListDoctors)
	r.GET("/api/services", fh.ListServices)
	r.GET("/api/animal-categories", fh.ListAnimalCategories)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
