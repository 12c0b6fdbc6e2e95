package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account. Username and email are unique
// across the collection; the plaintext password is never stored.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty"`
	Username       string          `bson:"username"`
	PasswordHash   string          `bson:"password_hash"`
	Email          string          `bson:"email"`
	BirthDate      *time.Time      `bson:"birth_date,omitempty"`
	FavoriteMovies []bson.ObjectID `bson:"favorite_movies"`
	CreatedAt      time.Time       `bson:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at"`
}
