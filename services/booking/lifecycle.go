package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/models"
	"petclinic/utils"
)

// Actor identifies who is requesting a lifecycle transition.
type Actor string

const (
	ActorOwner  Actor = "owner"
	ActorStaff  Actor = "staff"
	ActorDoctor Actor = "doctor"
	ActorAdmin  Actor = "admin"
)

// allowedTransitions is the closed transition table. Anything not listed is
// rejected; completed, cancelled and no_show have no outgoing edges.
var allowedTransitions = map[models.ReservationStatus][]models.ReservationStatus{
	models.StatusWaiting:   {models.StatusPending, models.StatusCancelled},
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
}

// CanTransition reports whether the table permits from -> to.
func CanTransition(from, to models.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// actorMayRequest applies the role rules: owners may only cancel their
// reservation; staff, doctors and admins may perform any listed transition.
func actorMayRequest(actor Actor, to models.ReservationStatus) bool {
	switch actor {
	case ActorStaff, ActorDoctor, ActorAdmin:
		return true
	case ActorOwner:
		return to == models.StatusCancelled
	}
	return false
}

// ParseStatus maps a wire string onto the canonical status enum. Only
// canonical names are accepted; the tracker labels "placed" and "scheduled"
// are display-only.
func ParseStatus(raw string) (models.ReservationStatus, error) {
	switch models.ReservationStatus(raw) {
	case models.StatusPending, models.StatusWaiting, models.StatusConfirmed,
		models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
		return models.ReservationStatus(raw), nil
	}
	return "", fmt.Errorf("unknown reservation status %q", raw)
}

// TransitionStatus moves a reservation through its lifecycle. Illegal moves
// are rejected against the transition table rather than trusting caller
// discipline; cancelling or no-showing releases the slot because the store
// drops the reservation from its active uniqueness index.
func (s *DefaultBookingService) TransitionStatus(ctx context.Context, reservationID string, next models.ReservationStatus, actor Actor) (*models.Reservation, error) {
	current, err := s.Repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		return nil, &LifecycleError{
			From:   current.Status,
			To:     next,
			Reason: fmt.Sprintf("%s is a terminal status", current.Status),
		}
	}
	if !CanTransition(current.Status, next) {
		return nil, &LifecycleError{
			From:   current.Status,
			To:     next,
			Reason: "transition not permitted",
		}
	}
	if !actorMayRequest(actor, next) {
		return nil, &LifecycleError{
			From:   current.Status,
			To:     next,
			Reason: fmt.Sprintf("%s may not perform this transition", actor),
		}
	}

	// The write is a compare-and-set on the status read above; a transition
	// landing in between fails the set instead of being overwritten.
	updated, err := s.Repo.UpdateStatus(ctx, reservationID, current.Status, next)
	if errors.Is(err, reservationRepo.ErrStaleStatus) {
		latest, readErr := s.Repo.GetByID(ctx, reservationID)
		if readErr != nil {
			return nil, readErr
		}
		return nil, &LifecycleError{
			From:   latest.Status,
			To:     next,
			Reason: "reservation status changed concurrently",
		}
	}
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Reservation status changed",
		zap.String("reservationID", reservationID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
		zap.String("actor", string(actor)))
	return updated, nil
}

// TrackReservations returns the owner-facing history with derived tracker
// labels, newest first.
func (s *DefaultBookingService) TrackReservations(ctx context.Context, clientEmail string) ([]models.TrackedReservation, error) {
	reservations, err := s.Repo.ListByClientEmail(ctx, clientEmail)
	if err != nil {
		return nil, err
	}
	tracked := make([]models.TrackedReservation, 0, len(reservations))
	for _, r := range reservations {
		tracked = append(tracked, r.Tracked())
	}
	return tracked, nil
}

// DoctorSchedule returns the doctor's reservations for one date, terminal
// ones included, for the staff-facing day view.
func (s *DefaultBookingService) DoctorSchedule(ctx context.Context, doctorID, date string) ([]models.Reservation, error) {
	return s.Repo.ListByDoctorAndDate(ctx, doctorID, date)
}
