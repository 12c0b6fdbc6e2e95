package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/myflix-api/internal/model"
)

// MovieRepository defines the interface for movie-related database
// operations. The API never mutates movies.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByID(ctx context.Context, id bson.ObjectID) (*model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetGenreByName(ctx context.Context, name string) (*model.Genre, error)
	GetDirectorByName(ctx context.Context, name string) (*model.Director, error)
}

const movieCollection = "movies"

type movieMongoRepository struct {
	db *mongo.Database
}

// NewMovieMongoRepository creates a MongoDB-backed MovieRepository and
// ensures the lookup indexes exist. Titles are a lookup key but are not
// guaranteed unique, so the index is plain.
func NewMovieMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) MovieRepository {
	collection := db.Collection(movieCollection)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "genre.name", Value: 1}}},
		{Keys: bson.D{{Key: "director.name", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create movie indexes")
	}

	return &movieMongoRepository{db: db}
}

func (r *movieMongoRepository) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := r.db.Collection(movieCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []*model.Movie
	for cursor.Next(ctx) {
		var movie model.Movie
		if err := cursor.Decode(&movie); err != nil {
			return nil, err
		}
		movies = append(movies, &movie)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieMongoRepository) GetMovieByID(ctx context.Context, id bson.ObjectID) (*model.Movie, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *movieMongoRepository) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *movieMongoRepository) GetGenreByName(ctx context.Context, name string) (*model.Genre, error) {
	movie, err := r.findOne(ctx, bson.M{"genre.name": name})
	if err != nil {
		return nil, err
	}

	return &movie.Genre, nil
}

func (r *movieMongoRepository) GetDirectorByName(ctx context.Context, name string) (*model.Director, error) {
	movie, err := r.findOne(ctx, bson.M{"director.name": name})
	if err != nil {
		return nil, err
	}

	return &movie.Director, nil
}

func (r *movieMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Movie, error) {
	result := r.db.Collection(movieCollection).FindOne(ctx, filter)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var movie model.Movie
	if err := result.Decode(&movie); err != nil {
		return nil, err
	}

	return &movie, nil
}
