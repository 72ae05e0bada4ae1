package races

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/internal/members"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// RacesRepository defines what the app layer needs from the repository
type RacesRepository interface {
	GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error)
	ListCircuits(ctx context.Context, limit, offset int) ([]models.Circuit, int, error)
	GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error)
	ListRaces(ctx context.Context, limit, offset int) ([]models.Race, int, error)
	ListPositions(ctx context.Context, raceID uuid.UUID) ([]models.Position, error)
	Stats(ctx context.Context) (*SyncStats, error)
	UpsertRace(ctx context.Context, circuit CircuitParams, race RaceParams) (*RaceWrite, error)
	UpsertPosition(ctx context.Context, params PositionParams) (*models.Position, bool, error)
}

// RaceSource is the provider of the calendar and classifications
type RaceSource interface {
	GetRaces(ctx context.Context, season int, raceType string) ([]apisports_client.Race, error)
	GetRaceRankings(ctx context.Context, raceID int) ([]apisports_client.RaceRanking, error)
}

// DriverFinder resolves classification entries to stored drivers
type DriverFinder interface {
	FindDriver(ctx context.Context, lookup members.DriverLookup) (*models.Member, error)
}

// App handles races business logic
type App struct {
	repo    RacesRepository
	source  RaceSource
	drivers DriverFinder
	pacer   pacing.Pacer
	clock   clockwork.Clock
}

// NewApp creates a new races App
func NewApp(repo RacesRepository, source RaceSource, drivers DriverFinder, pacer pacing.Pacer, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		source:  source,
		drivers: drivers,
		pacer:   pacer,
		clock:   clock,
	}
}

func (a *App) GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error) {
	return a.repo.GetCircuit(ctx, id)
}

func (a *App) ListCircuits(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Circuit], error) {
	circuits, total, err := a.repo.ListCircuits(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return rest.Page[models.Circuit]{}, err
	}
	return rest.NewPage(circuits, total, pagination), nil
}

func (a *App) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	return a.repo.GetRace(ctx, id)
}

// GetRaceDetail returns a race together with its circuit
func (a *App) GetRaceDetail(ctx context.Context, id uuid.UUID) (*RaceDetail, error) {
	race, err := a.repo.GetRace(ctx, id)
	if err != nil {
		return nil, err
	}
	circuit, err := a.repo.GetCircuit(ctx, race.CircuitID)
	if err != nil {
		return nil, err
	}
	return &RaceDetail{Race: *race, Circuit: circuit}, nil
}

func (a *App) ListRaces(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Race], error) {
	races, total, err := a.repo.ListRaces(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return rest.Page[models.Race]{}, err
	}
	return rest.NewPage(races, total, pagination), nil
}

// ListPositions returns a race's classification, checking the race exists.
func (a *App) ListPositions(ctx context.Context, raceID uuid.UUID) ([]models.Position, error) {
	if _, err := a.repo.GetRace(ctx, raceID); err != nil {
		return nil, err
	}
	return a.repo.ListPositions(ctx, raceID)
}

func (a *App) SyncStats(ctx context.Context) (*SyncStats, error) {
	return a.repo.Stats(ctx)
}

// SyncRaces pulls a season's races and, for each one, its classification.
// season <= 0 means the current year. Only a failed season fetch aborts.
func (a *App) SyncRaces(ctx context.Context, season int) (*RaceSyncResult, error) {
	if season <= 0 {
		season = a.clock.Now().Year()
	}
	result := &RaceSyncResult{Season: season, Errors: []string{}}

	apiRaces, err := a.source.GetRaces(ctx, season, apisports_client.RaceTypeRace)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error fetching races: %v", err))
		log.Error().Err(err).Int("season", season).Msg("race sync aborted: fetch failed")
		return result, fmt.Errorf("fetch races: %w", err)
	}
	result.RacesFetched = len(apiRaces)
	if len(apiRaces) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("no races found for season %d", season))
		log.Warn().Int("season", season).Msg("race sync aborted: no races")
		return result, nil
	}

	for _, apiRace := range apiRaces {
		name := apiRace.Competition.Name
		if apiRace.ID == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("race %s has no API ID", name))
			log.Warn().Str("race", name).Msg("skipping race without external id")
			continue
		}

		race, err := a.syncRace(ctx, apiRace, result)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing race %s: %v", name, err))
			log.Error().Err(err).Str("race", name).Int("external_id", apiRace.ID).Msg("failed to sync race")
			continue
		}

		if err := a.pacer.Wait(ctx); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Race sync interrupted: %v", err))
			return result, err
		}
		a.syncPositions(ctx, race, apiRace.ID, result)
	}

	result.Success = true
	log.Info().
		Int("season", season).
		Int("races_fetched", result.RacesFetched).
		Int("races_created", result.RacesCreated).
		Int("races_updated", result.RacesUpdated).
		Int("positions_created", result.PositionsCreated).
		Int("positions_updated", result.PositionsUpdated).
		Int("errors", len(result.Errors)).
		Msg("race sync completed")

	return result, nil
}

func (a *App) syncRace(ctx context.Context, apiRace apisports_client.Race, result *RaceSyncResult) (*models.Race, error) {
	params, err := mapRace(apiRace)
	if err != nil {
		return nil, err
	}

	write, err := a.repo.UpsertRace(ctx, mapCircuit(apiRace), params)
	if err != nil {
		return nil, err
	}

	if write.CircuitCreated {
		result.CircuitsCreated++
	} else {
		result.CircuitsUpdated++
	}
	if write.RaceCreated {
		result.RacesCreated++
	} else {
		result.RacesUpdated++
	}
	return write.Race, nil
}

func (a *App) syncPositions(ctx context.Context, race *models.Race, externalID int, result *RaceSyncResult) {
	rankings, err := a.source.GetRaceRankings(ctx, externalID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error fetching rankings for race %s: %v", race.Name, err))
		log.Error().Err(err).Str("race", race.Name).Msg("failed to fetch race rankings")
		return
	}

	for _, ranking := range rankings {
		driver, err := a.drivers.FindDriver(ctx, driverLookup(ranking.Driver))
		if errors.Is(err, models.ErrNotFound) {
			log.Warn().Str("race", race.Name).Str("driver", ranking.Driver.Name).Msg("no driver matches classification entry, skipping")
			continue
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing position for %s in %s: %v", ranking.Driver.Name, race.Name, err))
			continue
		}

		if !ranking.Position.Valid {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing position for %s in %s: missing position", ranking.Driver.Name, race.Name))
			continue
		}

		_, created, err := a.repo.UpsertPosition(ctx, mapPosition(race.ID, driver.ID, ranking))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing position for %s in %s: %v", ranking.Driver.Name, race.Name, err))
			log.Error().Err(err).Str("race", race.Name).Str("driver", ranking.Driver.Name).Msg("failed to upsert position")
			continue
		}
		if created {
			result.PositionsCreated++
		} else {
			result.PositionsUpdated++
		}
	}
}

func driverLookup(d apisports_client.DriverRef) members.DriverLookup {
	var externalID *int
	if d.ID != 0 {
		id := d.ID
		externalID = &id
	}
	return members.DriverLookup{
		ExternalID:   externalID,
		Name:         d.Name,
		DriverNumber: d.Number.Ptr(),
		NameAcronym:  sqlutil.NonEmpty(d.Abbr),
	}
}

func mapPosition(raceID, driverID uuid.UUID, r apisports_client.RaceRanking) PositionParams {
	return PositionParams{
		RaceID:       raceID,
		DriverID:     driverID,
		Position:     r.Position.Value,
		Points:       PointsForPosition(r.Position.Value),
		Laps:         r.Laps.Ptr(),
		Time:         sqlutil.NonEmpty(string(r.Time)),
		PitStopCount: r.Pits.Ptr(),
		Grid:         sqlutil.NonEmpty(string(r.Grid)),
	}
}
