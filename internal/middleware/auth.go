package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/myflix-api/internal/model"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
	"github.com/vasapolrittideah/myflix-api/shared/auth"
	"github.com/vasapolrittideah/myflix-api/shared/httputil"
)

type contextKey struct{}

var userContextKey = contextKey{}

// Authenticate gates protected routes. It extracts the bearer token,
// verifies the signature and expiry, resolves the subject to a live user
// record and attaches it to the request context. Any failure rejects the
// request before the route handler runs.
func Authenticate(jwtAuth *auth.JWTAuthenticator, userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearerToken(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			username, err := jwtAuth.VerifyToken(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			// A token outlives the deletion of its user; the live lookup is
			// what retires it. Store failures are not the client's fault.
			user, err := userRepo.GetUserByUsername(r.Context(), username)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}

				hlog.FromRequest(r).Error().Err(err).Msg("failed to resolve token subject")
				httputil.RespondError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user the request gate resolved, if any.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}

func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
