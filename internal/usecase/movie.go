package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/myflix-api/internal/model"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
)

// MovieUsecase defines the read-only catalog operations.
type MovieUsecase interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetGenre(ctx context.Context, name string) (*model.Genre, error)
	GetDirector(ctx context.Context, name string) (*model.Director, error)
}

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)

type movieUsecase struct {
	movieRepo repository.MovieRepository
}

// NewMovieUsecase creates a new instance of MovieUsecase.
func NewMovieUsecase(movieRepo repository.MovieRepository) MovieUsecase {
	return &movieUsecase{movieRepo: movieRepo}
}

func (u *movieUsecase) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return u.movieRepo.ListMovies(ctx)
}

func (u *movieUsecase) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	movie, err := u.movieRepo.GetMovieByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (u *movieUsecase) GetGenre(ctx context.Context, name string) (*model.Genre, error) {
	genre, err := u.movieRepo.GetGenreByName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGenreNotFound
		}

		return nil, err
	}

	return genre, nil
}

func (u *movieUsecase) GetDirector(ctx context.Context, name string) (*model.Director, error) {
	director, err := u.movieRepo.GetDirectorByName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDirectorNotFound
		}

		return nil, err
	}

	return director, nil
}
