package models

// WizardStep indexes the booking wizard's fixed three steps.
type WizardStep int

const (
	StepClientInfo WizardStep = iota
	StepPetInfo
	StepReservationInfo
)

// ClientInfo holds the pet owner's contact details (wizard step 0).
type ClientInfo struct {
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Mobile string `bson:"mobile" json:"mobile"`
	Gender string `bson:"gender,omitempty" json:"gender,omitempty"`
}

// PetInfo holds the patient details (wizard step 1).
type PetInfo struct {
	Name      string  `bson:"name" json:"name"`
	Category  string  `bson:"category" json:"category"`
	Age       float64 `bson:"age" json:"age"`
	Weight    float64 `bson:"weight" json:"weight"`
	Allergies string  `bson:"allergies,omitempty" json:"allergies,omitempty"`
}

// ReservationInfo holds the appointment intent (wizard step 2).
type ReservationInfo struct {
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot  SlotLabel `bson:"timeSlot" json:"timeSlot"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ReservationDraft is the in-progress booking form, held in the session
// cache between wizard steps and discarded on success or abandonment.
type ReservationDraft struct {
	SessionID   string          `json:"sessionId"`
	Step        WizardStep      `json:"step"`
	Client      ClientInfo      `json:"client"`
	Pet         PetInfo         `json:"pet"`
	Reservation ReservationInfo `json:"reservation"`
}

// DraftResponse is what wizard endpoints return: the draft plus, once the
// doctor and date are known, the current slot availability.
type DraftResponse struct {
	Draft        ReservationDraft  `json:"draft"`
	Availability *SlotAvailability `json:"availability,omitempty"`
}
