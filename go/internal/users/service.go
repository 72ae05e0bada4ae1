package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/rs/zerolog/log"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes session auth over REST
type Service struct {
	app          UsersApp
	sessions     *Sessions
	secureCookie bool
}

// NewService creates a new auth HTTP service. secureCookie should be set
// whenever the server is reached over TLS.
func NewService(app UsersApp, sessions *Sessions, secureCookie bool) *Service {
	return &Service{
		app:          app,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes registers auth routes on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", s.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", s.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", s.HandleMe)
}

// HandleRegister creates an account and logs it in
func (s *Service) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.app.Register(r.Context(), req)
	switch {
	case errors.Is(err, ErrEmailTaken):
		rest.WriteError(w, http.StatusBadRequest, "A user with this email already exists")
		return
	case errors.Is(err, ErrUsernameTaken):
		rest.WriteError(w, http.StatusBadRequest, "A user with this username already exists")
		return
	case isValidation(err):
		rest.WriteError(w, http.StatusBadRequest, "Email and a password of at least 8 characters are required")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to register user")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if !s.startSession(w, user) {
		return
	}
	rest.WriteJSON(w, http.StatusCreated, user)
}

// HandleLogin verifies credentials and sets the session cookie
func (s *Service) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.app.Login(r.Context(), req)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		rest.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	case isValidation(err):
		rest.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	case err != nil:
		log.Error().Err(err).Msg("failed to log in")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !s.startSession(w, user) {
		return
	}
	rest.WriteJSON(w, http.StatusOK, user)
}

// HandleLogout clears the session cookie
func (s *Service) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	rest.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleMe returns the current user
func (s *Service) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	rest.WriteJSON(w, http.StatusOK, user)
}

func (s *Service) startSession(w http.ResponseWriter, user *models.User) bool {
	token, expires, err := s.sessions.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to issue session")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to start session")
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(s.sessions.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func isValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
