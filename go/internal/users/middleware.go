package users

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/rs/zerolog/log"
)

type contextKey struct{}

// WithUser returns a copy of ctx carrying user
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(contextKey{}).(*models.User)
	return user, ok && user != nil
}

// UserGetter loads the account behind a session
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Middleware attaches the session user to the request context. Requests
// without a valid session pass through anonymously.
func (s *Sessions) Middleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := s.Verify(token)
			if err != nil {
				log.Debug().Err(err).Msg("ignoring invalid session")
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUser(r.Context(), id)
			if err != nil {
				log.Debug().Err(err).Str("user_id", id.String()).Msg("session user not found")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// sessionToken reads the session cookie, falling back to a bearer token
// for non-browser clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
