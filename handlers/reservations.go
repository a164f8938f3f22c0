package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petclinic/services/booking"
)

// ReservationHandler exposes tracking and lifecycle endpoints.
type ReservationHandler struct {
	Service booking.BookingService
}

// NewReservationHandler wires a handler to the booking service.
func NewReservationHandler(svc booking.BookingService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// Track lists the reservations for a pet owner, newest first, with the
// derived tracker label on each.
func (h *ReservationHandler) Track(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner query parameter is required"})
		return
	}
	tracked, err := h.Service.TrackReservations(c.Request.Context(), owner)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": tracked})
}

// Schedule lists a doctor's reservations for one date, for the staff day
// view. Terminal reservations are included.
func (h *ReservationHandler) Schedule(c *gin.Context) {
	doctorID := c.Query("doctor")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor and date query parameters are required"})
		return
	}
	reservations, err := h.Service.DoctorSchedule(c.Request.Context(), doctorID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// UpdateStatus moves a reservation through its lifecycle.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
		Actor  string `json:"actor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	status, err := booking.ParseStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.Service.TransitionStatus(c.Request.Context(), c.Param("id"), status, booking.Actor(input.Actor))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}
