package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"petclinic/models"
)

// ErrSessionNotFound means the wizard session expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrStepOrder means a step was submitted while the draft is on an earlier
// step. Going forward requires each step in order; going back never does.
var ErrStepOrder = errors.New("previous wizard steps must be completed first")

// ErrSubmitInFlight means a confirmation for this session is already being
// processed; the submit action must not run twice concurrently.
var ErrSubmitInFlight = errors.New("a submission for this session is already in progress")

// ValidationError reports field-scoped failures for a single wizard step.
// Fields maps field name to a human-readable message; only the submitted
// step's fields ever appear in it.
type ValidationError struct {
	Step   models.WizardStep
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed for step %d: %s", e.Step, strings.Join(names, ", "))
}

// AvailabilityError wraps a failed booked-slot fetch. Callers must treat it
// as "availability unknown", never as an empty booked set.
type AvailabilityError struct {
	Err error
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("could not determine slot availability: %v", e.Err)
}

func (e *AvailabilityError) Unwrap() error { return e.Err }

// ConflictError means the store rejected a reservation because another
// active reservation holds the same (doctor, date, slot) triple. BookedSlots
// carries the refreshed availability so the caller can re-render the picker
// without a second round-trip.
type ConflictError struct {
	DoctorID    string
	Date        string
	TimeSlot    models.SlotLabel
	BookedSlots models.BookedSlots
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is no longer available for doctor %s", e.TimeSlot, e.Date, e.DoctorID)
}

// SubmissionError covers remote failures on confirmation other than a slot
// conflict. The draft is retained so the user can retry without re-entering
// data.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("reservation submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// LifecycleError reports a rejected status transition.
type LifecycleError struct {
	From   models.ReservationStatus
	To     models.ReservationStatus
	Reason string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("cannot move reservation from %s to %s: %s", e.From, e.To, e.Reason)
}
