package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/myflix-api/internal/usecase"
	"github.com/vasapolrittideah/myflix-api/shared/httputil"
)

// MovieHandler serves the read-only catalog endpoints.
type MovieHandler struct {
	movieUsecase usecase.MovieUsecase
}

// NewMovieHandler creates a new MovieHandler instance.
func NewMovieHandler(movieUsecase usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{movieUsecase: movieUsecase}
}

// List handles GET /movies.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieUsecase.ListMovies(r.Context())
	if err != nil {
		h.internalError(w, r, err, "failed to list movies")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newMovieResponses(movies))
}

// GetByTitle handles GET /movies/{title}.
func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	movie, err := h.movieUsecase.GetMovieByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
			return
		}

		h.internalError(w, r, err, "failed to get movie")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newMovieResponse(movie))
}

// GetGenre handles GET /genres/{name}.
func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.movieUsecase.GetGenre(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, usecase.ErrGenreNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
			return
		}

		h.internalError(w, r, err, "failed to get genre")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newGenreResponse(genre))
}

// GetDirector handles GET /directors/{name}.
func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	director, err := h.movieUsecase.GetDirector(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, usecase.ErrDirectorNotFound) {
			httputil.RespondError(w, http.StatusNotFound, err.Error())
			return
		}

		h.internalError(w, r, err, "failed to get director")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newDirectorResponse(director))
}

func (h *MovieHandler) internalError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	hlog.FromRequest(r).Error().Err(err).Msg(logMsg)
	httputil.RespondError(w, http.StatusInternalServerError, "something went wrong")
}
