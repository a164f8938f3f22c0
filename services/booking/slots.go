package booking

import "petclinic/models"

// slotCatalog is the fixed, ordered list of bookable clinic times for one
// day. It is identical for every doctor and every date; the slot picker and
// the availability query both treat it as the definition of "all slots".
var slotCatalog = []models.SlotLabel{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
	"05:00 PM",
	"05:30 PM",
}

// SlotCatalog returns the day's bookable slots in display order. Callers
// must not mutate the returned slice.
func SlotCatalog() []models.SlotLabel {
	return slotCatalog
}

// IsCatalogSlot reports whether the label is one of the clinic's fixed slots.
func IsCatalogSlot(slot models.SlotLabel) bool {
	for _, s := range slotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}
