package reservationRepo

import (
	"context"
	"errors"

	"petclinic/models"
)

// ErrSlotTaken is returned when an insert loses the race for a
// (doctor, date, timeSlot) triple to another active reservation. The store's
// partial unique index is the authoritative check; callers must treat this
// as a conflict, not retry the same slot.
var ErrSlotTaken = errors.New("time slot already reserved for this doctor and date")

// ErrNotFound is returned when no reservation matches the given ID.
var ErrNotFound = errors.New("reservation not found")

// ErrStaleStatus is returned when a status update loses a concurrent race:
// the reservation's status no longer matches the one the caller read before
// deciding on the transition.
var ErrStaleStatus = errors.New("reservation status changed concurrently")

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// UpdateStatus is a compare-and-set: the write only applies while the
	// stored status still equals from, otherwise ErrStaleStatus.
	UpdateStatus(ctx context.Context, id string, from, to models.ReservationStatus) (*models.Reservation, error)
	// GetBookedSlots returns the slot labels held by active (slot-holding)
	// reservations for the doctor on the date.
	GetBookedSlots(ctx context.Context, doctorID, date string) (models.BookedSlots, error)
	ListByClientEmail(ctx context.Context, email string) ([]models.Reservation, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Reservation, error)
}
