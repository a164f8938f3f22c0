package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	referenceRepo "petclinic/database/repository/reference"
	"petclinic/models"
	"petclinic/utils"
)

// StartSession creates a fresh, empty draft and stores it under a new
// session ID. Every booking flow begins here; a prior booking leaves no
// residue because its session was deleted on success.
func (s *DefaultBookingService) StartSession(ctx context.Context) (*models.ReservationDraft, error) {
	draft := &models.ReservationDraft{
		SessionID: uuid.New().String(),
		Step:      models.StepClientInfo,
	}
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("Booking session started", zap.String("sessionID", draft.SessionID))
	return draft, nil
}

// GetSession returns the current draft for the session.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID string) (*models.ReservationDraft, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// SubmitClientInfo validates the step-0 field subset and advances the wizard
// to pet info. On a validation failure the stored draft is left untouched
// and the user stays on the step with field-level messages.
func (s *DefaultBookingService) SubmitClientInfo(ctx context.Context, sessionID string, info models.ClientInfo) (*models.ReservationDraft, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepClientInfo {
		return nil, ErrStepOrder
	}

	if fields := validateClientInfo(info); len(fields) > 0 {
		return nil, &ValidationError{Step: models.StepClientInfo, Fields: fields}
	}

	draft.Client = info
	if draft.Step == models.StepClientInfo {
		draft.Step = models.StepPetInfo
	}
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitPetInfo validates the step-1 field subset and advances to the
// reservation details. The category is checked against the animal-category
// reference list when the directory is reachable.
func (s *DefaultBookingService) SubmitPetInfo(ctx context.Context, sessionID string, info models.PetInfo) (*models.ReservationDraft, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepPetInfo {
		return nil, ErrStepOrder
	}

	categories, catErr := s.Reference.ListAnimalCategories(ctx)
	if catErr != nil {
		// Directory unreachable: fall back to shape-only validation rather
		// than blocking the step.
		utils.GetLogger().Warn("Could not load animal categories", zap.Error(catErr))
		categories = nil
	}

	if fields := validatePetInfo(info, categories); len(fields) > 0 {
		return nil, &ValidationError{Step: models.StepPetInfo, Fields: fields}
	}

	draft.Pet = info
	if draft.Step == models.StepPetInfo {
		draft.Step = models.StepReservationInfo
	}
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitReservationInfo validates the step-2 field subset, stores the
// reservation intent, and returns the current availability for the chosen
// doctor and date. If the chosen slot is already booked the details are
// still rejected field-scoped, with the refreshed availability attached so
// the picker can redraw.
func (s *DefaultBookingService) SubmitReservationInfo(ctx context.Context, sessionID string, info models.ReservationInfo) (*models.DraftResponse, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepReservationInfo {
		return nil, ErrStepOrder
	}

	fields := validateReservationInfo(info, time.Now())
	if len(fields) == 0 {
		s.checkReservationDirectory(ctx, info, fields)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Step: models.StepReservationInfo, Fields: fields}
	}

	booked, err := s.GetBookedSlots(ctx, info.DoctorID, info.Date)
	if err != nil {
		return nil, err
	}
	availability := BuildAvailability(info.DoctorID, info.Date, booked)

	if !IsSlotBookable(info.TimeSlot, booked) {
		return &models.DraftResponse{Draft: *draft, Availability: availability}, &ValidationError{
			Step:   models.StepReservationInfo,
			Fields: map[string]string{"timeSlot": "time slot is no longer available"},
		}
	}

	draft.Reservation = info
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return &models.DraftResponse{Draft: *draft, Availability: availability}, nil
}

// checkReservationDirectory verifies the chosen doctor and service against
// the clinic directory, mirroring the pet step's category check. An unknown
// entry is a field error; an unreachable directory falls back to shape-only
// validation rather than blocking the step.
func (s *DefaultBookingService) checkReservationDirectory(ctx context.Context, info models.ReservationInfo, fields map[string]string) {
	doctor, err := s.Reference.GetDoctorByID(ctx, info.DoctorID)
	switch {
	case errors.Is(err, referenceRepo.ErrNotFound):
		fields["doctorId"] = "unknown doctor"
	case err != nil:
		utils.GetLogger().Warn("Could not load doctor", zap.String("doctorID", info.DoctorID), zap.Error(err))
	case !doctor.Active:
		fields["doctorId"] = "doctor is not accepting reservations"
	}

	if _, err := s.Reference.GetServiceByID(ctx, info.ServiceID); err != nil {
		if errors.Is(err, referenceRepo.ErrNotFound) {
			fields["serviceId"] = "unknown service"
		} else {
			utils.GetLogger().Warn("Could not load service", zap.String("serviceID", info.ServiceID), zap.Error(err))
		}
	}
}

// GoBack moves the wizard one step backward. Backward moves never validate;
// returning to an earlier step must not be blockable.
func (s *DefaultBookingService) GoBack(ctx context.Context, sessionID string) (*models.ReservationDraft, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepClientInfo {
		draft.Step--
	}
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CancelSession discards the draft entirely.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
