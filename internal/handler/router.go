package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/myflix-api/internal/middleware"
	"github.com/vasapolrittideah/myflix-api/shared/httputil"
)

// RouterParams bundles everything the router needs.
type RouterParams struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	// Gate is the bearer-token middleware applied to protected routes.
	Gate func(http.Handler) http.Handler

	AuthHandler  *AuthHandler
	UserHandler  *UserHandler
	MovieHandler *MovieHandler
}

// NewRouter builds the HTTP routing tree. Only the greeting, health check,
// login and registration are public; everything else sits behind the
// request gate.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, m := range middleware.RequestLogger(params.Logger) {
		r.Use(m)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(params.AllowedOrigins))

	r.Get("/", welcome)
	r.Get("/health", health)
	r.Post("/login", params.AuthHandler.Login)
	r.Post("/users", params.UserHandler.Register)

	r.Group(func(r chi.Router) {
		r.Use(params.Gate)

		r.Get("/movies", params.MovieHandler.List)
		r.Get("/movies/{title}", params.MovieHandler.GetByTitle)
		r.Get("/genres/{name}", params.MovieHandler.GetGenre)
		r.Get("/directors/{name}", params.MovieHandler.GetDirector)

		r.Get("/users", params.UserHandler.List)
		r.Get("/users/{username}", params.UserHandler.Get)
		r.Put("/users/{username}", params.UserHandler.Update)
		r.Delete("/users/{username}", params.UserHandler.Delete)
		r.Post("/users/{username}/movies/{movieID}", params.UserHandler.AddFavorite)
		r.Delete("/users/{username}/movies/{movieID}", params.UserHandler.RemoveFavorite)
	})

	return r
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the myFlix movie club!"})
}

func health(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
