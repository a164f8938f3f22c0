package models

// SlotLabel identifies one fixed clinic time-of-day, e.g. "10:00 AM".
// The full catalog lives in services/booking; labels are opaque here.
type SlotLabel string

// BookedSlots is the set of slot labels already taken for one doctor on one
// date, as reported by the reservation store.
type BookedSlots map[SlotLabel]struct{}

// Contains reports whether the slot is in the booked set.
func (b BookedSlots) Contains(slot SlotLabel) bool {
	_, ok := b[slot]
	return ok
}

// Labels returns the booked labels as a slice (order unspecified).
func (b BookedSlots) Labels() []SlotLabel {
	out := make([]SlotLabel, 0, len(b))
	for s := range b {
		out = append(out, s)
	}
	return out
}

// SlotAvailability pairs the full catalog with the booked subset so the slot
// picker can render every slot, disabled or not, in catalog order.
type SlotAvailability struct {
	DoctorID string      `json:"doctorId"`
	Date     string      `json:"date"`
	Slots    []SlotState `json:"slots"`
}

// SlotState is one catalog entry with its booked flag.
type SlotState struct {
	Label  SlotLabel `json:"label"`
	Booked bool      `json:"booked"`
}
