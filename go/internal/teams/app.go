package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, limit, offset int) ([]models.Team, int, error)
	FindTeam(ctx context.Context, externalID *int, name string) (*models.Team, error)
	UpsertTeam(ctx context.Context, params TeamParams) (*models.Team, bool, error)
}

// TeamSource is the upstream provider of constructor data
type TeamSource interface {
	GetTeams(ctx context.Context) ([]apisports_client.Team, error)
}

// App handles teams business logic
type App struct {
	repo   TeamsRepository
	source TeamSource
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, source TeamSource) *App {
	return &App{
		repo:   repo,
		source: source,
	}
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// ListTeams retrieves one page of teams
func (a *App) ListTeams(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Team], error) {
	teams, total, err := a.repo.ListTeams(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return rest.Page[models.Team]{}, err
	}
	return rest.NewPage(teams, total, pagination), nil
}

// FindTeam resolves a team by provider id, else by name.
func (a *App) FindTeam(ctx context.Context, externalID *int, name string) (*models.Team, error) {
	return a.repo.FindTeam(ctx, externalID, name)
}

// SyncTeams pulls every team from the provider and upserts it. A failed or
// empty fetch aborts the run; a failure on one team is recorded and the
// loop moves on.
func (a *App) SyncTeams(ctx context.Context) (*TeamSyncResult, error) {
	result := &TeamSyncResult{Errors: []string{}}

	apiTeams, err := a.source.GetTeams(ctx)
	if err != nil {
		msg := fmt.Sprintf("Error fetching teams: %v", err)
		result.Errors = append(result.Errors, msg)
		log.Error().Err(err).Msg("team sync aborted: fetch failed")
		return result, fmt.Errorf("fetch teams: %w", err)
	}
	if len(apiTeams) == 0 {
		result.Errors = append(result.Errors, "No teams found in API response")
		log.Warn().Msg("team sync aborted: provider returned no teams")
		return result, nil
	}

	result.TeamsFetched = len(apiTeams)

	for _, apiTeam := range apiTeams {
		_, created, err := a.repo.UpsertTeam(ctx, mapTeam(apiTeam))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing team %s: %v", apiTeam.Name, err))
			log.Error().Err(err).Str("team", apiTeam.Name).Int("external_id", apiTeam.ID).Msg("failed to upsert team")
			continue
		}

		if created {
			result.TeamsCreated++
		} else {
			result.TeamsUpdated++
		}
	}

	result.Success = true
	log.Info().
		Int("fetched", result.TeamsFetched).
		Int("created", result.TeamsCreated).
		Int("updated", result.TeamsUpdated).
		Int("errors", len(result.Errors)).
		Msg("team sync completed")

	return result, nil
}

// mapTeam converts a provider team into write params. Status is always
// active: a team present in the feed is racing.
func mapTeam(t apisports_client.Team) TeamParams {
	externalID := t.ID
	return TeamParams{
		ExternalID:         &externalID,
		Name:               t.Name,
		Status:             models.TeamStatusActive,
		LogoURL:            sqlutil.NonEmpty(t.Logo),
		Base:               sqlutil.NonEmpty(t.Base),
		FirstTeamEntry:     t.FirstTeamEntry.Ptr(),
		WorldChampionships: t.WorldChampionships.Ptr(),
		HighestRaceFinish:  t.HighestRaceFinish.Position.Ptr(),
		PolePositions:      t.PolePositions.Ptr(),
		FastestLaps:        t.FastestLaps.Ptr(),
		President:          sqlutil.NonEmpty(t.President),
		Director:           sqlutil.NonEmpty(t.Director),
		TechnicalManager:   sqlutil.NonEmpty(t.TechnicalManager),
		Chassis:            sqlutil.NonEmpty(t.Chassis),
		Engine:             sqlutil.NonEmpty(t.Engine),
		Tyres:              sqlutil.NonEmpty(t.Tyres),
	}
}
