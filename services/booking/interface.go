package booking

import (
	"context"

	referenceRepo "petclinic/database/repository/reference"
	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/models"
)

// BookingService drives the reservation core: the stepwise booking wizard,
// slot availability, submission, and the reservation lifecycle.
type BookingService interface {
	StartSession(ctx context.Context) (*models.ReservationDraft, error)
	GetSession(ctx context.Context, sessionID string) (*models.ReservationDraft, error)
	SubmitClientInfo(ctx context.Context, sessionID string, info models.ClientInfo) (*models.ReservationDraft, error)
	SubmitPetInfo(ctx context.Context, sessionID string, info models.PetInfo) (*models.ReservationDraft, error)
	SubmitReservationInfo(ctx context.Context, sessionID string, info models.ReservationInfo) (*models.DraftResponse, error)
	GoBack(ctx context.Context, sessionID string) (*models.ReservationDraft, error)
	CancelSession(ctx context.Context, sessionID string) error
	ConfirmReservation(ctx context.Context, sessionID string) (*models.Reservation, error)

	GetBookedSlots(ctx context.Context, doctorID, date string) (models.BookedSlots, error)
	GetAvailability(ctx context.Context, doctorID, date string) (*models.SlotAvailability, error)

	TrackReservations(ctx context.Context, clientEmail string) ([]models.TrackedReservation, error)
	TransitionStatus(ctx context.Context, reservationID string, next models.ReservationStatus, actor Actor) (*models.Reservation, error)
	DoctorSchedule(ctx context.Context, doctorID, date string) ([]models.Reservation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      reservationRepo.ReservationRepository
	Reference referenceRepo.ReferenceRepository
	Sessions  *SessionStore
}
