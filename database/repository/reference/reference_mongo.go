package referenceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"petclinic/database"
	"petclinic/models"
)

type mongoReferenceRepo struct {
	doctors    *mongo.Collection
	services   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoReferenceRepo returns a repository over the clinic directory
// collections.
func NewMongoReferenceRepo() ReferenceRepository {
	db := database.DB()
	return &mongoReferenceRepo{
		doctors:    db.Collection("doctors"),
		services:   db.Collection("services"),
		categories: db.Collection("animal_categories"),
	}
}

func (r *mongoReferenceRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.doctors.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("error decoding doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoReferenceRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := r.doctors.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (r *mongoReferenceRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoReferenceRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &service, nil
}

func (r *mongoReferenceRepo) ListAnimalCategories(ctx context.Context) ([]models.AnimalCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch animal categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.AnimalCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding animal categories: %w", err)
	}
	return categories, nil
}
