package booking

import (
	"context"

	"go.uber.org/zap"

	"petclinic/models"
	"petclinic/utils"
)

// GetBookedSlots returns the slots already held for the doctor on the date.
// Until both doctor and date are chosen there is nothing to ask the store,
// so the query is a no-op returning an empty set. A store failure is
// propagated as an AvailabilityError; it must never be mistaken for "no
// slots booked" or the picker would offer slots that are actually taken.
func (s *DefaultBookingService) GetBookedSlots(ctx context.Context, doctorID, date string) (models.BookedSlots, error) {
	if doctorID == "" || date == "" {
		return models.BookedSlots{}, nil
	}

	booked, err := s.Repo.GetBookedSlots(ctx, doctorID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booked slots",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		return nil, &AvailabilityError{Err: err}
	}
	return booked, nil
}

// GetAvailability returns the full catalog annotated with the booked state
// for (doctor, date). The result is a snapshot: callers re-fetch whenever
// doctor or date changes and after any reservation is created or cancelled.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, doctorID, date string) (*models.SlotAvailability, error) {
	booked, err := s.GetBookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	return BuildAvailability(doctorID, date, booked), nil
}
