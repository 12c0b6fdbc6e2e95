package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/myflix-api/internal/model"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
	"github.com/vasapolrittideah/myflix-api/shared/mailer"
	"github.com/vasapolrittideah/myflix-api/shared/security"
)

// UserUsecase defines the business logic for account management and
// favorites.
type UserUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateProfile(ctx context.Context, username string, params UpdateProfileParams) (*model.User, error)
	DeleteUser(ctx context.Context, username string) (*model.User, error)
	AddFavorite(ctx context.Context, username, movieID string) (*model.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*model.User, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Username  string
	Password  string
	Email     string
	BirthDate *time.Time
}

// UpdateProfileParams defines the optional parameters for a profile update.
// Only the fields that are not nil will be updated.
type UpdateProfileParams struct {
	Username  *string
	Password  *string
	Email     *string
	BirthDate *time.Time
}

var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrMovieNotFound     = errors.New("movie not found")
)

type userUsecase struct {
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	mailer    *mailer.Mailer
	logger    *zerolog.Logger
}

// NewUserUsecase creates a new instance of UserUsecase. The mailer may be
// nil, in which case no welcome email is sent.
func NewUserUsecase(
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	mailer *mailer.Mailer,
	logger *zerolog.Logger,
) UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		movieRepo: movieRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

func (u *userUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     params.Username,
		PasswordHash: passwordHash,
		Email:        params.Email,
		BirthDate:    params.BirthDate,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	u.sendWelcomeEmail(user)

	return user, nil
}

func (u *userUsecase) GetUser(ctx context.Context, username string) (*model.User, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, mapUserNotFound(err)
	}

	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsers(ctx)
}

func (u *userUsecase) UpdateProfile(
	ctx context.Context,
	username string,
	params UpdateProfileParams,
) (*model.User, error) {
	updateParams := repository.UpdateUserParams{
		Username:  params.Username,
		Email:     params.Email,
		BirthDate: params.BirthDate,
	}

	if params.Password != nil {
		passwordHash, err := security.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		updateParams.PasswordHash = &passwordHash
	}

	user, err := u.userRepo.UpdateUser(ctx, username, updateParams)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, mapUserNotFound(err)
	}

	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, username string) (*model.User, error) {
	user, err := u.userRepo.DeleteUser(ctx, username)
	if err != nil {
		return nil, mapUserNotFound(err)
	}

	return user, nil
}

func (u *userUsecase) AddFavorite(ctx context.Context, username, movieID string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	// The movie must exist before it can be referenced from a favorites
	// list; the removal path has no such requirement.
	if _, err := u.movieRepo.GetMovieByID(ctx, objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}

		return nil, err
	}

	user, err := u.userRepo.AddFavoriteMovie(ctx, username, objectID)
	if err != nil {
		return nil, mapUserNotFound(err)
	}

	return user, nil
}

func (u *userUsecase) RemoveFavorite(ctx context.Context, username, movieID string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	user, err := u.userRepo.RemoveFavoriteMovie(ctx, username, objectID)
	if err != nil {
		return nil, mapUserNotFound(err)
	}

	return user, nil
}

// sendWelcomeEmail sends a greeting to a freshly registered user. Delivery
// problems are logged and never fail the registration.
func (u *userUsecase) sendWelcomeEmail(user *model.User) {
	if u.mailer == nil {
		return
	}

	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to myFlix! Your account has been created.</p>
		<p>Log in to start browsing the catalog and building your list of favorite movies.</p>

		<p>Enjoy,</p>
		<p>The myFlix Team</p>
	`, user.Username)

	go func() {
		if err := u.mailer.SendHTML([]string{user.Email}, "Welcome to myFlix", htmlBody); err != nil {
			u.logger.Error().Err(err).Str("username", user.Username).Msg("failed to send welcome email")
		}
	}()
}

func mapUserNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUserNotFound
	}

	return err
}
