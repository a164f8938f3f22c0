package reservationRepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"petclinic/database"
)

// mongoReservationRepo is the MongoDB-backed implementation.
type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a repository bound to the "reservations"
// collection and ensures its indexes exist. The uniqueness index is load
// bearing, so a failure here must abort the boot.
func NewMongoReservationRepo() (ReservationRepository, error) {
	repo := &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}
