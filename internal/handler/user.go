package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/myflix-api/internal/middleware"
	"github.com/vasapolrittideah/myflix-api/internal/usecase"
	"github.com/vasapolrittideah/myflix-api/shared/httputil"
	"github.com/vasapolrittideah/myflix-api/shared/validation"
)

// UserHandler serves registration, account management and favorites
// endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validation.Validator
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userUsecase usecase.UserUsecase, validator *validation.Validator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fields := h.validator.Validate(req); fields != nil {
		httputil.RespondValidationErrors(w, fields)
		return
	}

	user, err := h.userUsecase.Register(r.Context(), usecase.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.RespondError(w, http.StatusConflict, err.Error())
			return
		}

		h.internalError(w, r, err, "registration failed")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, newUserResponse(user))
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		h.internalError(w, r, err, "failed to list users")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponses(users))
}

// Get handles GET /users/{username}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), username)
	if err != nil {
		h.respondUserError(w, r, err, "failed to get user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponse(user))
}

// Update handles PUT /users/{username}. The body is a partial update; only
// the fields present are changed.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fields := h.validator.Validate(req); fields != nil {
		httputil.RespondValidationErrors(w, fields)
		return
	}

	if req.Username == nil && req.Password == nil && req.Email == nil && req.BirthDate == nil {
		httputil.RespondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), username, usecase.UpdateProfileParams{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.RespondError(w, http.StatusConflict, err.Error())
			return
		}

		h.respondUserError(w, r, err, "failed to update user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponse(user))
}

// Delete handles DELETE /users/{username}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.DeleteUser(r.Context(), username)
	if err != nil {
		h.respondUserError(w, r, err, "failed to delete user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%s has been deleted", user.Username),
	})
}

// AddFavorite handles POST /users/{username}/movies/{movieID}.
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.AddFavorite(r.Context(), username, chi.URLParam(r, "movieID"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
			return
		}

		h.respondUserError(w, r, err, "failed to add favorite")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponse(user))
}

// RemoveFavorite handles DELETE /users/{username}/movies/{movieID}. Removing
// a movie that is not in the favorites is a no-op.
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.RemoveFavorite(r.Context(), username, chi.URLParam(r, "movieID"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
			return
		}

		h.respondUserError(w, r, err, "failed to remove favorite")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponse(user))
}

// requireOwner compares the gate-resolved identity against the
// path-addressed username and rejects the request with 403 on mismatch.
func (h *UserHandler) requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := chi.URLParam(r, "username")

	identity, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "missing authenticated user")
		return "", false
	}

	if identity.Username != username {
		httputil.RespondError(w, http.StatusForbidden, "you can only manage your own account")
		return "", false
	}

	return username, true
}

func (h *UserHandler) respondUserError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		httputil.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.internalError(w, r, err, logMsg)
}

func (h *UserHandler) internalError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	hlog.FromRequest(r).Error().Err(err).Msg(logMsg)
	httputil.RespondError(w, http.StatusInternalServerError, "something went wrong")
}
