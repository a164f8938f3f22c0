package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petclinic/models"
	"petclinic/services/booking"
)

// BookingHandler exposes the reservation wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler wires a handler to the booking service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// StartSession opens a fresh wizard session with an empty draft.
func (h *BookingHandler) StartSession(c *gin.Context) {
	draft, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionID": draft.SessionID, "draft": draft})
}

// GetSession returns the current draft and step.
func (h *BookingHandler) GetSession(c *gin.Context) {
	draft, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SubmitClientInfo handles the wizard's first step.
func (h *BookingHandler) SubmitClientInfo(c *gin.Context) {
	var input models.ClientInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SubmitClientInfo(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SubmitPetInfo handles the wizard's second step.
func (h *BookingHandler) SubmitPetInfo(c *gin.Context) {
	var input models.PetInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SubmitPetInfo(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SubmitReservationInfo handles the wizard's final step and returns current
// slot availability for the chosen doctor and date.
func (h *BookingHandler) SubmitReservationInfo(c *gin.Context) {
	var input models.ReservationInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Service.SubmitReservationInfo(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		// A stale slot choice comes back with refreshed availability so the
		// picker can redraw alongside the field error.
		if resp != nil && resp.Availability != nil {
			c.JSON(http.StatusConflict, gin.H{
				"error":        err.Error(),
				"availability": resp.Availability,
			})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoBack moves the wizard one step backward without validation.
func (h *BookingHandler) GoBack(c *gin.Context) {
	draft, err := h.Service.GoBack(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Confirm submits the completed draft for persistence.
func (h *BookingHandler) Confirm(c *gin.Context) {
	reservation, err := h.Service.ConfirmReservation(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// CancelSession abandons the wizard and discards the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetAvailability returns the full slot catalog annotated with booked state
// for a doctor and date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	doctorID := c.Query("doctor")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor and date query parameters are required"})
		return
	}
	availability, err := h.Service.GetAvailability(c.Request.Context(), doctorID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}
