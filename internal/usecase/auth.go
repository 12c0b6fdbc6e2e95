package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/myflix-api/internal/model"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
	"github.com/vasapolrittideah/myflix-api/shared/auth"
	"github.com/vasapolrittideah/myflix-api/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	// Login verifies the credentials and returns the user together with a
	// freshly issued bearer token.
	Login(ctx context.Context, params LoginParams) (*model.User, string, error)
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Username string
	Password string
}

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so that login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  *auth.JWTAuthenticator
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, jwtAuth *auth.JWTAuthenticator) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
	}
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.jwtAuth.IssueToken(user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
