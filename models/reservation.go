package models

import "time"

// ReservationStatus is the canonical status set for a persisted reservation.
// The owner-facing tracker labels ("placed", "scheduled") are derived views,
// not stored values.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusWaiting   ReservationStatus = "waiting"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// IsTerminal reports whether no further status transition is permitted.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// HoldsSlot reports whether the reservation still occupies its slot.
func (s ReservationStatus) HoldsSlot() bool {
	return s == StatusPending || s == StatusWaiting || s == StatusConfirmed || s == StatusCompleted
}

// TrackerStatus maps the canonical status onto the label shown in the
// owner-facing tracking view.
func (s ReservationStatus) TrackerStatus() string {
	switch s {
	case StatusPending:
		return "placed"
	case StatusConfirmed:
		return "scheduled"
	default:
		return string(s)
	}
}

// Reservation represents a committed appointment record.
type Reservation struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	Date      string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot  SlotLabel         `bson:"timeSlot" json:"timeSlot"`
	ServiceID string            `bson:"serviceId" json:"serviceId"`
	Client    ClientInfo        `bson:"client" json:"client"`
	Pet       PetInfo           `bson:"pet" json:"pet"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    ReservationStatus `bson:"status" json:"status"`
	// Active mirrors Status.HoldsSlot; the store's partial unique index on
	// (doctorId, date, timeSlot) keys on it, so it must be kept in sync on
	// every status change.
	Active    bool      `bson:"active" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TrackedReservation is the owner-facing view of a reservation.
type TrackedReservation struct {
	Reservation
	TrackerStatus string `json:"trackerStatus"`
}

// Tracked wraps a reservation with its derived tracker label.
func (r Reservation) Tracked() TrackedReservation {
	return TrackedReservation{Reservation: r, TrackerStatus: r.Status.TrackerStatus()}
}
