package booking

import (
	"regexp"
	"strings"
	"time"

	"petclinic/models"
	"petclinic/utils"
)

var (
	nameRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,79}$`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobileRe = regexp.MustCompile(`^0\d{9,10}$`)
)

// Each validator covers exactly one wizard step's field subset, so error
// messages stay local to the visible step and an invalid later step can
// never block an earlier one.

func validateClientInfo(info models.ClientInfo) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(info.Name) == "" {
		fields["name"] = "name is required"
	} else if !nameRe.MatchString(strings.TrimSpace(info.Name)) {
		fields["name"] = "name must be 2-80 letters, spaces, apostrophes or hyphens"
	}

	if strings.TrimSpace(info.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailRe.MatchString(info.Email) {
		fields["email"] = "email address is not valid"
	}

	if strings.TrimSpace(info.Mobile) == "" {
		fields["mobile"] = "mobile number is required"
	} else if !mobileRe.MatchString(info.Mobile) {
		fields["mobile"] = "mobile number must start with 0 and be 10-11 digits"
	}

	switch info.Gender {
	case "", "male", "female", "other":
	default:
		fields["gender"] = "gender must be male, female or other"
	}

	return fields
}

func validatePetInfo(info models.PetInfo, categories []models.AnimalCategory) map[string]string {
	fields := map[string]string{}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		fields["name"] = "pet name is required"
	} else if len(name) > 60 {
		fields["name"] = "pet name must be at most 60 characters"
	}

	if strings.TrimSpace(info.Category) == "" {
		fields["category"] = "animal category is required"
	} else if len(categories) > 0 && !categoryExists(info.Category, categories) {
		fields["category"] = "unknown animal category"
	}

	if info.Age < 0 {
		fields["age"] = "age cannot be negative"
	}
	if info.Weight < 0 {
		fields["weight"] = "weight cannot be negative"
	}

	return fields
}

func validateReservationInfo(info models.ReservationInfo, now time.Time) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(info.ServiceID) == "" {
		fields["serviceId"] = "service is required"
	}
	if strings.TrimSpace(info.DoctorID) == "" {
		fields["doctorId"] = "doctor is required"
	}

	if strings.TrimSpace(info.Date) == "" {
		fields["date"] = "date is required"
	} else if day, err := time.Parse(utils.DateFormat, info.Date); err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(today) {
			fields["date"] = "date cannot be in the past"
		}
	}

	if info.TimeSlot == "" {
		fields["timeSlot"] = "time slot is required"
	} else if !IsCatalogSlot(info.TimeSlot) {
		fields["timeSlot"] = "time slot is not offered by the clinic"
	}

	if len(info.Notes) > 500 {
		fields["notes"] = "notes must be at most 500 characters"
	}

	return fields
}

func categoryExists(name string, categories []models.AnimalCategory) bool {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) || c.ID == name {
			return true
		}
	}
	return false
}
