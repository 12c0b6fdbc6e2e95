package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Movie represents a catalog entry. Movies are read-only from the API's
// perspective; the collection is seeded and administered out of band.
type Movie struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Genre       Genre         `bson:"genre"`
	Director    Director      `bson:"director"`
	Actors      []string      `bson:"actors"`
	ImagePath   string        `bson:"image_path,omitempty"`
	Featured    bool          `bson:"featured"`
}

// Genre describes the genre a movie belongs to.
type Genre struct {
	Name        string `bson:"name"`
	Description string `bson:"description"`
}

// Director describes the director of a movie.
type Director struct {
	Name      string     `bson:"name"`
	Bio       string     `bson:"bio"`
	BirthYear *time.Time `bson:"birth_year,omitempty"`
}
