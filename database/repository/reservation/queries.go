package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petclinic/models"
)

// GetBookedSlots collects the time slots held by active reservations for the
// doctor on the date. Cancelled and no-show reservations are excluded, which
// is what frees their slot for rebooking.
func (r *mongoReservationRepo) GetBookedSlots(ctx context.Context, doctorID, date string) (models.BookedSlots, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"active":   true,
	}
	projection := options.Find().SetProjection(bson.M{"timeSlot": 1})

	cursor, err := r.coll.Find(ctx, filter, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TimeSlot models.SlotLabel `bson:"timeSlot"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding booked slots: %w", err)
	}

	booked := make(models.BookedSlots, len(rows))
	for _, row := range rows {
		booked[row.TimeSlot] = struct{}{}
	}
	return booked, nil
}

func (r *mongoReservationRepo) ListByClientEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"client.email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepo) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
