package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/models"
	"petclinic/utils"
)

// ConfirmReservation commits the draft. The flow is two-phase: an advisory
// availability re-check first (cheap, catches most races before a write),
// then the insert, where the store's unique index makes the authoritative
// call. On conflict the draft is retained at the details step and the error
// carries refreshed availability; on success the session is discarded and
// the persisted reservation returned.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, sessionID string) (*models.Reservation, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepReservationInfo || draft.Reservation.DoctorID == "" {
		return nil, ErrStepOrder
	}

	locked, err := s.Sessions.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	if !locked {
		return nil, ErrSubmitInFlight
	}
	defer s.Sessions.ReleaseSubmitLock(ctx, sessionID)

	intent := draft.Reservation

	// Advisory pre-check. The slot may have been taken since it was picked.
	booked, err := s.GetBookedSlots(ctx, intent.DoctorID, intent.Date)
	if err != nil {
		return nil, err
	}
	if !IsSlotBookable(intent.TimeSlot, booked) {
		return nil, &ConflictError{
			DoctorID:    intent.DoctorID,
			Date:        intent.Date,
			TimeSlot:    intent.TimeSlot,
			BookedSlots: booked,
		}
	}

	reservation := &models.Reservation{
		ID:        uuid.New().String(),
		DoctorID:  intent.DoctorID,
		Date:      intent.Date,
		TimeSlot:  intent.TimeSlot,
		ServiceID: intent.ServiceID,
		Client:    normalizeClient(draft.Client),
		Pet:       draft.Pet,
		Notes:     intent.Notes,
		Status:    models.StatusPending,
	}

	if err := s.Repo.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			// Lost the race to a concurrent booking. Refresh availability so
			// the caller can surface the now-taken slot; never retry the
			// same slot silently.
			refreshed, availErr := s.GetBookedSlots(ctx, intent.DoctorID, intent.Date)
			if availErr != nil {
				refreshed = nil
			}
			utils.GetLogger().Info("Reservation conflict on submit",
				zap.String("doctorID", intent.DoctorID),
				zap.String("date", intent.Date),
				zap.String("timeSlot", string(intent.TimeSlot)))
			return nil, &ConflictError{
				DoctorID:    intent.DoctorID,
				Date:        intent.Date,
				TimeSlot:    intent.TimeSlot,
				BookedSlots: refreshed,
			}
		}
		return nil, &SubmissionError{Err: err}
	}

	// Success: the draft is done, discard it. A failed delete only means the
	// session lingers until its TTL; the reservation itself is committed.
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("Failed to discard submitted session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	utils.GetLogger().Info("Reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("doctorID", reservation.DoctorID),
		zap.String("date", reservation.Date),
		zap.String("timeSlot", string(reservation.TimeSlot)))
	return reservation, nil
}

func normalizeClient(c models.ClientInfo) models.ClientInfo {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Mobile = strings.TrimSpace(c.Mobile)
	return c
}
