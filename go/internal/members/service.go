package members

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/rs/zerolog/log"
)

// MembersApp defines what the service layer needs from the members application
type MembersApp interface {
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
	ListMembers(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Member], error)
	ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]models.Member, error)
}

// Service exposes members over REST
type Service struct {
	app MembersApp
}

// NewService creates a new members HTTP service
func NewService(app MembersApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers member routes on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/members", s.HandleListMembers)
	mux.HandleFunc("GET /api/members/{id}", s.HandleGetMember)
	mux.HandleFunc("GET /api/teams/{id}/members", s.HandleListTeamMembers)
}

func (s *Service) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	pagination, err := rest.ParsePagination(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.app.ListMembers(r.Context(), pagination)
	if err != nil {
		log.Error().Err(err).Msg("failed to list members")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list members")
		return
	}

	rest.WriteJSON(w, http.StatusOK, page)
}

func (s *Service) HandleGetMember(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	member, err := s.app.GetMember(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Member not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("member_id", id.String()).Msg("failed to get member")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to get member")
		return
	}

	rest.WriteJSON(w, http.StatusOK, member)
}

// HandleListTeamMembers handles GET /api/teams/{id}/members
func (s *Service) HandleListTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	members, err := s.app.ListTeamMembers(r.Context(), teamID)
	if err != nil {
		log.Error().Err(err).Str("team_id", teamID.String()).Msg("failed to list team members")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list team members")
		return
	}

	rest.WriteJSON(w, http.StatusOK, members)
}
