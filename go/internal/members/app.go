package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/clients/openf1_client"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// MembersRepository defines what the app layer needs from the repository
type MembersRepository interface {
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]models.Member, int, error)
	ListMembersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Member, error)
	FindDriver(ctx context.Context, lookup DriverLookup) (*models.Member, error)
	UpsertMember(ctx context.Context, params MemberParams) (*models.Member, bool, error)
}

// DriverSource is the provider of standings and driver details
type DriverSource interface {
	GetDriversRankings(ctx context.Context, season int) ([]apisports_client.DriverRanking, error)
	GetDriver(ctx context.Context, id int) ([]apisports_client.Driver, error)
}

// DriverEnricher supplies the secondary driver feed used to fill blanks
type DriverEnricher interface {
	GetLatestDrivers(ctx context.Context) ([]openf1_client.Driver, error)
}

// TeamFinder resolves the team a driver races for
type TeamFinder interface {
	FindTeam(ctx context.Context, externalID *int, name string) (*models.Team, error)
}

// App handles members business logic
type App struct {
	repo     MembersRepository
	source   DriverSource
	enricher DriverEnricher
	teams    TeamFinder
	pacer    pacing.Pacer
	clock    clockwork.Clock
}

// NewApp creates a new members App. enricher may be nil.
func NewApp(repo MembersRepository, source DriverSource, enricher DriverEnricher, teams TeamFinder, pacer pacing.Pacer, clock clockwork.Clock) *App {
	return &App{
		repo:     repo,
		source:   source,
		enricher: enricher,
		teams:    teams,
		pacer:    pacer,
		clock:    clock,
	}
}

func (a *App) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return a.repo.GetMember(ctx, id)
}

func (a *App) ListMembers(ctx context.Context, pagination rest.PaginationParams) (rest.Page[models.Member], error) {
	members, total, err := a.repo.ListMembers(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return rest.Page[models.Member]{}, err
	}
	return rest.NewPage(members, total, pagination), nil
}

func (a *App) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]models.Member, error) {
	return a.repo.ListMembersByTeam(ctx, teamID)
}

// FindDriver resolves a driver for race classification entries
func (a *App) FindDriver(ctx context.Context, lookup DriverLookup) (*models.Member, error) {
	return a.repo.FindDriver(ctx, lookup)
}

// SyncDrivers reads the season standings to learn which drivers are racing,
// then fetches and upserts each one. season <= 0 means the current year.
func (a *App) SyncDrivers(ctx context.Context, season int) (*DriverSyncResult, error) {
	if season <= 0 {
		season = a.clock.Now().Year()
	}
	result := &DriverSyncResult{Season: season, Errors: []string{}}

	if err := a.pacer.Wait(ctx); err != nil {
		return result, err
	}

	rankings, err := a.source.GetDriversRankings(ctx, season)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error fetching driver rankings: %v", err))
		log.Error().Err(err).Int("season", season).Msg("driver sync aborted: rankings fetch failed")
		return result, fmt.Errorf("fetch driver rankings: %w", err)
	}
	if len(rankings) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("No drivers found in rankings for season %d", season))
		log.Warn().Int("season", season).Msg("driver sync aborted: no rankings")
		return result, nil
	}

	ids := driverIDs(rankings)
	result.DriversFetched = len(ids)
	enrichment := a.loadEnrichment(ctx)

	for _, id := range ids {
		if err := a.pacer.Wait(ctx); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Driver sync interrupted: %v", err))
			return result, err
		}

		created, err := a.syncDriver(ctx, id, enrichment)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing driver (%d): %v", id, err))
			log.Error().Err(err).Int("external_id", id).Msg("failed to sync driver")
			continue
		}

		if created {
			result.DriversCreated++
		} else {
			result.DriversUpdated++
		}
	}

	result.Success = true
	log.Info().
		Int("season", season).
		Int("fetched", result.DriversFetched).
		Int("created", result.DriversCreated).
		Int("updated", result.DriversUpdated).
		Int("errors", len(result.Errors)).
		Msg("driver sync completed")

	return result, nil
}

func (a *App) syncDriver(ctx context.Context, id int, enrichment map[int]openf1_client.Driver) (bool, error) {
	details, err := a.source.GetDriver(ctx, id)
	if err != nil {
		return false, err
	}
	if len(details) == 0 {
		return false, fmt.Errorf("driver not found: %d", id)
	}
	driver := details[0]

	ref, ok := driver.CurrentTeam()
	if !ok {
		return false, fmt.Errorf("no team listed for driver %s", driver.Name)
	}
	teamID := ref.ID
	team, err := a.teams.FindTeam(ctx, &teamID, ref.Name)
	if errors.Is(err, models.ErrNotFound) {
		return false, fmt.Errorf("team not found for driver %s: %s", driver.Name, ref.Name)
	}
	if err != nil {
		return false, err
	}

	params := mapDriver(driver, team.ID)
	if params.DriverNumber != nil {
		if extra, ok := enrichment[*params.DriverNumber]; ok {
			enrich(&params, extra)
		}
	}

	_, created, err := a.repo.UpsertMember(ctx, params)
	return created, err
}

// loadEnrichment indexes the secondary feed by car number. Failures only
// cost the fill-in.
func (a *App) loadEnrichment(ctx context.Context) map[int]openf1_client.Driver {
	out := map[int]openf1_client.Driver{}
	if a.enricher == nil {
		return out
	}
	drivers, err := a.enricher.GetLatestDrivers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("driver enrichment unavailable")
		return out
	}
	for _, d := range drivers {
		if d.DriverNumber != 0 {
			out[d.DriverNumber] = d
		}
	}
	return out
}

func driverIDs(rankings []apisports_client.DriverRanking) []int {
	seen := make(map[int]bool, len(rankings))
	ids := make([]int, 0, len(rankings))
	for _, r := range rankings {
		id := r.Driver.ID
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func mapDriver(d apisports_client.Driver, teamID uuid.UUID) MemberParams {
	externalID := d.ID
	return MemberParams{
		TeamID:       teamID,
		Name:         d.Name,
		Role:         models.MemberRoleDriver,
		Description:  "F1 Driver - " + d.Name,
		ExternalID:   &externalID,
		DriverNumber: d.Number.Ptr(),
		NameAcronym:  sqlutil.NonEmpty(d.Abbr),
		CountryCode:  sqlutil.NonEmpty(d.Country.Code),
		HeadshotURL:  sqlutil.NonEmpty(d.Image),
	}
}

func enrich(p *MemberParams, d openf1_client.Driver) {
	if p.NameAcronym == nil {
		p.NameAcronym = sqlutil.NonEmpty(d.NameAcronym)
	}
	if p.CountryCode == nil {
		p.CountryCode = sqlutil.NonEmpty(d.CountryCode)
	}
	if p.HeadshotURL == nil {
		p.HeadshotURL = sqlutil.NonEmpty(d.HeadshotURL)
	}
}
