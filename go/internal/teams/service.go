package teams

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/rs/zerolog/log"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Team], error)
}

// Service exposes teams over REST
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers team routes on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/teams", s.HandleListTeams)
	mux.HandleFunc("GET /api/teams/{id}", s.HandleGetTeam)
}

// HandleListTeams handles GET /api/teams
func (s *Service) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	pagination, err := rest.ParsePagination(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.app.ListTeams(r.Context(), pagination)
	if err != nil {
		log.Error().Err(err).Msg("failed to list teams")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}

	rest.WriteJSON(w, http.StatusOK, page)
}

// HandleGetTeam handles GET /api/teams/{id}
func (s *Service) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Team not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("team_id", id.String()).Msg("failed to get team")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to get team")
		return
	}

	rest.WriteJSON(w, http.StatusOK, team)
}
