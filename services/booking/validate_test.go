package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"petclinic/models"
)

func TestValidateClientInfo(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ClientInfo)
		wantField string
	}{
		{"valid", func(c *models.ClientInfo) {}, ""},
		{"empty name", func(c *models.ClientInfo) { c.Name = "" }, "name"},
		{"one-letter name", func(c *models.ClientInfo) { c.Name = "A" }, "name"},
		{"digits in name", func(c *models.ClientInfo) { c.Name = "Maria123" }, "name"},
		{"missing email", func(c *models.ClientInfo) { c.Email = "" }, "email"},
		{"malformed email", func(c *models.ClientInfo) { c.Email = "not-an-email" }, "email"},
		{"missing mobile", func(c *models.ClientInfo) { c.Mobile = "" }, "mobile"},
		{"foreign mobile", func(c *models.ClientInfo) { c.Mobile = "+15551234567" }, "mobile"},
		{"short mobile", func(c *models.ClientInfo) { c.Mobile = "0917123" }, "mobile"},
		{"bad gender", func(c *models.ClientInfo) { c.Gender = "unknown" }, "gender"},
		{"blank gender ok", func(c *models.ClientInfo) { c.Gender = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validClient()
			tt.mutate(&info)
			fields := validateClientInfo(info)
			if tt.wantField == "" {
				assert.Empty(t, fields)
			} else {
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestValidatePetInfo(t *testing.T) {
	categories := []models.AnimalCategory{{ID: "cat-1", Name: "Dog"}, {ID: "cat-2", Name: "Cat"}}

	tests := []struct {
		name      string
		mutate    func(*models.PetInfo)
		wantField string
	}{
		{"valid", func(p *models.PetInfo) {}, ""},
		{"empty name", func(p *models.PetInfo) { p.Name = " " }, "name"},
		{"long name", func(p *models.PetInfo) { p.Name = strings.Repeat("x", 61) }, "name"},
		{"no category", func(p *models.PetInfo) { p.Category = "" }, "category"},
		{"unknown category", func(p *models.PetInfo) { p.Category = "Dragon" }, "category"},
		{"negative age", func(p *models.PetInfo) { p.Age = -1 }, "age"},
		{"negative weight", func(p *models.PetInfo) { p.Weight = -0.5 }, "weight"},
		{"zero age ok", func(p *models.PetInfo) { p.Age = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validPet()
			tt.mutate(&info)
			fields := validatePetInfo(info, categories)
			if tt.wantField == "" {
				assert.Empty(t, fields)
			} else {
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestValidatePetInfoWithoutDirectoryOnlyChecksShape(t *testing.T) {
	info := validPet()
	info.Category = "Dragon"
	assert.Empty(t, validatePetInfo(info, nil))
}

func TestValidateReservationInfo(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*models.ReservationInfo)
		wantField string
	}{
		{"valid", func(r *models.ReservationInfo) { r.Date = "2024-06-02" }, ""},
		{"same day ok", func(r *models.ReservationInfo) { r.Date = "2024-06-01" }, ""},
		{"no service", func(r *models.ReservationInfo) { r.ServiceID = "" }, "serviceId"},
		{"no doctor", func(r *models.ReservationInfo) { r.DoctorID = "" }, "doctorId"},
		{"no date", func(r *models.ReservationInfo) { r.Date = "" }, "date"},
		{"bad date", func(r *models.ReservationInfo) { r.Date = "01/06/2024" }, "date"},
		{"past date", func(r *models.ReservationInfo) { r.Date = "2024-05-31" }, "date"},
		{"no slot", func(r *models.ReservationInfo) { r.Date = "2024-06-02"; r.TimeSlot = "" }, "timeSlot"},
		{"unknown slot", func(r *models.ReservationInfo) { r.Date = "2024-06-02"; r.TimeSlot = "01:00 AM" }, "timeSlot"},
		{"long notes", func(r *models.ReservationInfo) { r.Date = "2024-06-02"; r.Notes = strings.Repeat("n", 501) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validReservation()
			tt.mutate(&info)
			fields := validateReservationInfo(info, now)
			if tt.wantField == "" {
				assert.Empty(t, fields)
			} else {
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

// Step isolation: each validator sees only its own step's fields, so garbage
// in one step can never fail another step's check.
func TestStepValidationIsIsolated(t *testing.T) {
	assert.Empty(t, validateClientInfo(validClient()))

	badPet := models.PetInfo{Name: "", Age: -4}
	assert.NotEmpty(t, validatePetInfo(badPet, nil))

	// Client validation still passes regardless of the broken pet step.
	assert.Empty(t, validateClientInfo(validClient()))

	// And a broken client step does not disturb pet validation.
	badClient := models.ClientInfo{Email: "nope"}
	assert.NotEmpty(t, validateClientInfo(badClient))
	assert.Empty(t, validatePetInfo(validPet(), nil))
}
