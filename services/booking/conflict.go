package booking

import "petclinic/models"

// IsSlotBookable reports whether the slot can still be selected given the
// booked set from the last availability query. This is an advisory,
// client-facing check only; the store's unique index remains the final
// authority at submission time.
func IsSlotBookable(slot models.SlotLabel, booked models.BookedSlots) bool {
	return !booked.Contains(slot)
}

// BuildAvailability renders the full catalog against the booked set, in
// catalog order, so every slot is shown either selectable or disabled.
func BuildAvailability(doctorID, date string, booked models.BookedSlots) *models.SlotAvailability {
	slots := make([]models.SlotState, 0, len(slotCatalog))
	for _, label := range slotCatalog {
		slots = append(slots, models.SlotState{
			Label:  label,
			Booked: booked.Contains(label),
		})
	}
	return &models.SlotAvailability{DoctorID: doctorID, Date: date, Slots: slots}
}
