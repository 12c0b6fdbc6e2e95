package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/myflix-api/internal/usecase"
	"github.com/vasapolrittideah/myflix-api/shared/httputil"
	"github.com/vasapolrittideah/myflix-api/shared/validation"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles POST /login. Failures are reported with a single uniform
// message so that an unknown username and a wrong password cannot be told
// apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fields := h.validator.Validate(req); fields != nil {
		httputil.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httputil.RespondError(w, http.StatusBadRequest, usecase.ErrInvalidCredentials.Error())
			return
		}

		hlog.FromRequest(r).Error().Err(err).Msg("login failed")
		httputil.RespondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, LoginResponse{
		User:  newUserResponse(user),
		Token: token,
	})
}
