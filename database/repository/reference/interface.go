package referenceRepo

import (
	"context"
	"errors"

	"petclinic/models"
)

// ErrNotFound is returned when no directory entry matches the given ID.
var ErrNotFound = errors.New("reference entry not found")

// ReferenceRepository exposes the read-only directory data the booking
// wizard's selectable fields draw from. The documents are owned elsewhere;
// this repository never writes them.
type ReferenceRepository interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListAnimalCategories(ctx context.Context) ([]models.AnimalCategory, error)
}
