package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/services/booking"
	"petclinic/utils"
)

// respondBookingError translates the booking core's error taxonomy onto
// HTTP. Validation keeps the caller on the current step with field-level
// messages; a conflict ships the refreshed booked set so the slot picker can
// redraw immediately; an availability failure is a gateway problem, never an
// empty set.
func respondBookingError(c *gin.Context, err error) {
	var (
		validationErr   *booking.ValidationError
		availabilityErr *booking.AvailabilityError
		conflictErr     *booking.ConflictError
		submissionErr   *booking.SubmissionError
		lifecycleErr    *booking.LifecycleError
	)

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrStepOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, reservationRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"step":   validationErr.Step,
			"fields": validationErr.Fields,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":       conflictErr.Error(),
			"timeSlot":    conflictErr.TimeSlot,
			"bookedSlots": conflictErr.BookedSlots.Labels(),
		})
	case errors.As(err, &availabilityErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "slot availability is currently unknown, please retry"})
	case errors.As(err, &lifecycleErr):
		c.JSON(http.StatusConflict, gin.H{"error": lifecycleErr.Error()})
	case errors.As(err, &submissionErr):
		utils.GetLogger().Error("Reservation submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit reservation, your details were kept"})
	default:
		utils.GetLogger().Error("Unexpected booking error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
