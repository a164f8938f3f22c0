package models

// Doctor is read-only reference data owned by the clinic directory.
type Doctor struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Active    bool   `bson:"active" json:"active"`
}

// Service is a bookable service offering (consultation, vaccination, ...).
type Service struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
}

// AnimalCategory is a selectable pet category (dog, cat, bird, ...).
type AnimalCategory struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
