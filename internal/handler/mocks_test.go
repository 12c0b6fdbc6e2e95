package handler_test

import (
	"context"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/myflix-api/internal/handler"
	"github.com/vasapolrittideah/myflix-api/internal/middleware"
	"github.com/vasapolrittideah/myflix-api/internal/model"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
	"github.com/vasapolrittideah/myflix-api/internal/usecase"
	"github.com/vasapolrittideah/myflix-api/shared/auth"
	"github.com/vasapolrittideah/myflix-api/shared/security"
	"github.com/vasapolrittideah/myflix-api/shared/validation"
)

// fakeUserRepo is an in-memory UserRepository that mimics the driver's
// error contract (ErrNoDocuments, duplicate-key write errors).
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, duplicateKeyError()
		}
	}

	user.ID = bson.NewObjectID()
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []bson.ObjectID{}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	r.users[user.Username] = user

	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return user, nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	return users, nil
}

func (r *fakeUserRepo) UpdateUser(
	_ context.Context,
	username string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Username != nil {
		for _, existing := range r.users {
			if existing.Username == *params.Username && existing != user {
				return nil, duplicateKeyError()
			}
		}
		delete(r.users, user.Username)
		user.Username = *params.Username
		r.users[user.Username] = user
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.BirthDate != nil {
		user.BirthDate = params.BirthDate
	}
	user.UpdatedAt = time.Now()

	return user, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	delete(r.users, username)

	return user, nil
}

func (r *fakeUserRepo) AddFavoriteMovie(
	_ context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if !slices.Contains(user.FavoriteMovies, movieID) {
		user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	}

	return user, nil
}

func (r *fakeUserRepo) RemoveFavoriteMovie(
	_ context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	user.FavoriteMovies = slices.DeleteFunc(user.FavoriteMovies, func(id bson.ObjectID) bool {
		return id == movieID
	})

	return user, nil
}

// fakeMovieRepo is an in-memory MovieRepository.
type fakeMovieRepo struct {
	movies []*model.Movie
}

func (r *fakeMovieRepo) ListMovies(_ context.Context) ([]*model.Movie, error) {
	return r.movies, nil
}

func (r *fakeMovieRepo) GetMovieByID(_ context.Context, id bson.ObjectID) (*model.Movie, error) {
	for _, movie := range r.movies {
		if movie.ID == id {
			return movie, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeMovieRepo) GetMovieByTitle(_ context.Context, title string) (*model.Movie, error) {
	for _, movie := range r.movies {
		if movie.Title == title {
			return movie, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeMovieRepo) GetGenreByName(_ context.Context, name string) (*model.Genre, error) {
	for _, movie := range r.movies {
		if movie.Genre.Name == name {
			return &movie.Genre, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeMovieRepo) GetDirectorByName(_ context.Context, name string) (*model.Director, error) {
	for _, movie := range r.movies {
		if movie.Director.Name == name {
			return &movie.Director, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// testServer wires the full router with in-memory repositories so handler
// tests exercise the same middleware chain as production.
type testServer struct {
	router    http.Handler
	jwtAuth   *auth.JWTAuthenticator
	userRepo  *fakeUserRepo
	movieRepo *fakeMovieRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userRepo := newFakeUserRepo()
	movieRepo := &fakeMovieRepo{}
	jwtAuth := auth.NewJWTAuthenticator([]byte("0123456789abcdef0123456789abcdef"), "myflix-api", time.Hour)
	logger := zerolog.Nop()

	validator, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}

	router := handler.NewRouter(handler.RouterParams{
		Logger:         logger,
		AllowedOrigins: []string{"*"},
		Gate:           middleware.Authenticate(jwtAuth, userRepo),
		AuthHandler:    handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo, jwtAuth), validator),
		UserHandler:    handler.NewUserHandler(usecase.NewUserUsecase(userRepo, movieRepo, nil, &logger), validator),
		MovieHandler:   handler.NewMovieHandler(usecase.NewMovieUsecase(movieRepo)),
	})

	return &testServer{
		router:    router,
		jwtAuth:   jwtAuth,
		userRepo:  userRepo,
		movieRepo: movieRepo,
	}
}

// seedUser inserts a user with a real argon2 hash and returns a valid token
// for it.
func (s *testServer) seedUser(t *testing.T, username, password, email string) string {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if _, err := s.userRepo.CreateUser(context.Background(), &model.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	token, err := s.jwtAuth.IssueToken(username)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	return token
}

func (s *testServer) seedMovie(t *testing.T, title, genre, director string) *model.Movie {
	t.Helper()

	movie := &model.Movie{
		ID:          bson.NewObjectID(),
		Title:       title,
		Description: "a test movie",
		Genre:       model.Genre{Name: genre, Description: "a test genre"},
		Director:    model.Director{Name: director, Bio: "a test director"},
		Actors:      []string{"Some Actor"},
	}
	s.movieRepo.movies = append(s.movieRepo.movies, movie)

	return movie
}
