package handler

import (
	"time"

	"github.com/vasapolrittideah/myflix-api/internal/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type RegisterRequest struct {
	Username  string     `json:"username" validate:"required,min=5,alphanum"`
	Password  string     `json:"password" validate:"required"`
	Email     string     `json:"email"    validate:"required,email"`
	BirthDate *time.Time `json:"birthday"`
}

type UpdateUserRequest struct {
	Username  *string    `json:"username" validate:"omitempty,min=5,alphanum"`
	Password  *string    `json:"password" validate:"omitempty,min=1"`
	Email     *string    `json:"email"    validate:"omitempty,email"`
	BirthDate *time.Time `json:"birthday"`
}

// UserResponse is the wire form of a user record. The password hash is
// deliberately absent.
type UserResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	BirthDate      *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []string   `json:"favorite_movies"`
}

type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Genre       GenreResponse    `json:"genre"`
	Director    DirectorResponse `json:"director"`
	Actors      []string         `json:"actors"`
	ImagePath   string           `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}

type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DirectorResponse struct {
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	BirthYear *time.Time `json:"birth_year,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func newUserResponse(user *model.User) UserResponse {
	favorites := make([]string, 0, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		favorites = append(favorites, id.Hex())
	}

	return UserResponse{
		ID:             user.ID.Hex(),
		Username:       user.Username,
		Email:          user.Email,
		BirthDate:      user.BirthDate,
		FavoriteMovies: favorites,
	}
}

func newUserResponses(users []*model.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}

	return responses
}

func newMovieResponse(movie *model.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.Hex(),
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       newGenreResponse(&movie.Genre),
		Director:    newDirectorResponse(&movie.Director),
		Actors:      movie.Actors,
		ImagePath:   movie.ImagePath,
		Featured:    movie.Featured,
	}
}

func newMovieResponses(movies []*model.Movie) []MovieResponse {
	responses := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		responses = append(responses, newMovieResponse(movie))
	}

	return responses
}

func newGenreResponse(genre *model.Genre) GenreResponse {
	return GenreResponse{
		Name:        genre.Name,
		Description: genre.Description,
	}
}

func newDirectorResponse(director *model.Director) DirectorResponse {
	return DirectorResponse{
		Name:      director.Name,
		Bio:       director.Bio,
		BirthYear: director.BirthYear,
	}
}
