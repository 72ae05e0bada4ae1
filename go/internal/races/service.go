package races

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/rs/zerolog/log"
)

// RacesApp defines what the service layer needs from the races application
type RacesApp interface {
	GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error)
	ListCircuits(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Circuit], error)
	GetRaceDetail(ctx context.Context, id uuid.UUID) (*RaceDetail, error)
	ListRaces(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Race], error)
	ListPositions(ctx context.Context, raceID uuid.UUID) ([]models.Position, error)
}

// Service exposes circuits, races and classifications over REST
type Service struct {
	app RacesApp
}

// NewService creates a new races HTTP service
func NewService(app RacesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers circuit and race routes on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/circuits", s.HandleListCircuits)
	mux.HandleFunc("GET /api/circuits/{id}", s.HandleGetCircuit)
	mux.HandleFunc("GET /api/races", s.HandleListRaces)
	mux.HandleFunc("GET /api/races/{id}", s.HandleGetRace)
	mux.HandleFunc("GET /api/races/{id}/positions", s.HandleListPositions)
}

func (s *Service) HandleListCircuits(w http.ResponseWriter, r *http.Request) {
	pagination, err := rest.ParsePagination(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.app.ListCircuits(r.Context(), pagination)
	if err != nil {
		log.Error().Err(err).Msg("failed to list circuits")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list circuits")
		return
	}
	rest.WriteJSON(w, http.StatusOK, page)
}

func (s *Service) HandleGetCircuit(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid circuit ID format")
		return
	}

	circuit, err := s.app.GetCircuit(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Circuit not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("circuit_id", id.String()).Msg("failed to get circuit")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to get circuit")
		return
	}
	rest.WriteJSON(w, http.StatusOK, circuit)
}

func (s *Service) HandleListRaces(w http.ResponseWriter, r *http.Request) {
	pagination, err := rest.ParsePagination(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.app.ListRaces(r.Context(), pagination)
	if err != nil {
		log.Error().Err(err).Msg("failed to list races")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list races")
		return
	}
	rest.WriteJSON(w, http.StatusOK, page)
}

// HandleGetRace handles GET /api/races/{id}, embedding the circuit
func (s *Service) HandleGetRace(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid race ID format")
		return
	}

	race, err := s.app.GetRaceDetail(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Race not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("race_id", id.String()).Msg("failed to get race")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to get race")
		return
	}
	rest.WriteJSON(w, http.StatusOK, race)
}

func (s *Service) HandleListPositions(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid race ID format")
		return
	}

	positions, err := s.app.ListPositions(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Race not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("race_id", id.String()).Msg("failed to list positions")
		rest.WriteError(w, http.StatusInternalServerError, "Failed to list positions")
		return
	}
	rest.WriteJSON(w, http.StatusOK, positions)
}
