package races

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/internal/members"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	circuits     []*models.Circuit
	races        []*models.Race
	positions    []*models.Position
	failRace     map[string]bool
	failPosition map[uuid.UUID]bool
}

func (f *fakeRepo) GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error) {
	for _, c := range f.circuits {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) ListCircuits(ctx context.Context, limit, offset int) ([]models.Circuit, int, error) {
	var out []models.Circuit
	for i, c := range f.circuits {
		if i >= offset && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, len(f.circuits), nil
}

func (f *fakeRepo) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	for _, r := range f.races {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) ListRaces(ctx context.Context, limit, offset int) ([]models.Race, int, error) {
	var out []models.Race
	for i, r := range f.races {
		if i >= offset && len(out) < limit {
			out = append(out, *r)
		}
	}
	return out, len(f.races), nil
}

func (f *fakeRepo) ListPositions(ctx context.Context, raceID uuid.UUID) ([]models.Position, error) {
	out := []models.Position{}
	for _, p := range f.positions {
		if p.RaceID == raceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Stats(ctx context.Context) (*SyncStats, error) {
	stats := &SyncStats{TotalRaces: len(f.races), TotalCircuits: len(f.circuits)}
	for _, r := range f.races {
		switch r.Status {
		case models.RaceStatusCompleted:
			stats.CompletedRaces++
		case models.RaceStatusScheduled:
			stats.ScheduledRaces++
		case models.RaceStatusOngoing:
			stats.OngoingRaces++
		case models.RaceStatusCancelled:
			stats.CancelledRaces++
		}
	}
	return stats, nil
}

func (f *fakeRepo) UpsertRace(ctx context.Context, cp CircuitParams, rp RaceParams) (*RaceWrite, error) {
	if f.failRace[rp.Name] {
		return nil, errors.New("deadlock detected")
	}
	out := &RaceWrite{}

	circuit := f.findCircuit(cp)
	if circuit == nil {
		circuit = &models.Circuit{ID: uuid.New()}
		f.circuits = append(f.circuits, circuit)
		out.CircuitCreated = true
	}
	circuit.Name, circuit.Location = cp.Name, cp.Location

	race := f.findRace(rp, circuit.ID)
	if race == nil {
		race = &models.Race{ID: uuid.New()}
		f.races = append(f.races, race)
		out.RaceCreated = true
	}
	race.ExternalID = rp.ExternalID
	race.CircuitID = circuit.ID
	race.Name = rp.Name
	race.Description = rp.Description
	race.StartAt = rp.StartAt
	race.Status = rp.Status
	out.Race = race
	return out, nil
}

func (f *fakeRepo) findCircuit(cp CircuitParams) *models.Circuit {
	for _, c := range f.circuits {
		if c.Name == cp.Name {
			return c
		}
	}
	for _, c := range f.circuits {
		if c.Location == cp.Location {
			return c
		}
	}
	return nil
}

func (f *fakeRepo) findRace(rp RaceParams, circuitID uuid.UUID) *models.Race {
	for _, r := range f.races {
		if rp.ExternalID != nil && r.ExternalID != nil && *r.ExternalID == *rp.ExternalID {
			return r
		}
	}
	for _, r := range f.races {
		if r.Name == rp.Name {
			return r
		}
	}
	for _, r := range f.races {
		if r.CircuitID == circuitID {
			return r
		}
	}
	return nil
}

func (f *fakeRepo) UpsertPosition(ctx context.Context, p PositionParams) (*models.Position, bool, error) {
	if f.failPosition[p.DriverID] {
		return nil, false, errors.New("check constraint")
	}
	for _, existing := range f.positions {
		if existing.RaceID == p.RaceID && existing.DriverID == p.DriverID {
			applyPosition(existing, p)
			return existing, false, nil
		}
	}
	pos := &models.Position{ID: uuid.New(), RaceID: p.RaceID, DriverID: p.DriverID}
	applyPosition(pos, p)
	f.positions = append(f.positions, pos)
	return pos, true, nil
}

func applyPosition(pos *models.Position, p PositionParams) {
	pos.Position = p.Position
	pos.Points = p.Points
	pos.Laps = p.Laps
	pos.Time = p.Time
	pos.PitStopCount = p.PitStopCount
	pos.Grid = p.Grid
}

type fakeSource struct {
	races       []apisports_client.Race
	racesErr    error
	rankings    map[int][]apisports_client.RaceRanking
	rankingsErr map[int]error
	raceType    string
}

func (f *fakeSource) GetRaces(ctx context.Context, season int, raceType string) ([]apisports_client.Race, error) {
	f.raceType = raceType
	return f.races, f.racesErr
}

func (f *fakeSource) GetRaceRankings(ctx context.Context, raceID int) ([]apisports_client.RaceRanking, error) {
	if err := f.rankingsErr[raceID]; err != nil {
		return nil, err
	}
	return f.rankings[raceID], nil
}

type fakeDrivers struct {
	byExternalID map[int]*models.Member
	byAcronym    map[string]*models.Member
}

func (f *fakeDrivers) FindDriver(ctx context.Context, lookup members.DriverLookup) (*models.Member, error) {
	if lookup.ExternalID != nil {
		if m, ok := f.byExternalID[*lookup.ExternalID]; ok {
			return m, nil
		}
	}
	if lookup.NameAcronym != nil {
		if m, ok := f.byAcronym[*lookup.NameAcronym]; ok {
			return m, nil
		}
	}
	return nil, models.ErrNotFound
}

type countingPacer struct{ waits int }

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}

func flex(i int) apisports_client.FlexInt { return apisports_client.FlexInt{Value: i, Valid: true} }

var (
	verstappen = &models.Member{ID: uuid.New(), Name: "Max Verstappen", Role: models.MemberRoleDriver}
	leclerc    = &models.Member{ID: uuid.New(), Name: "Charles Leclerc", Role: models.MemberRoleDriver}
)

func apiRace(id int, name, circuit, city, country string) apisports_client.Race {
	r := apisports_client.Race{
		ID:      id,
		Circuit: apisports_client.CircuitRef{Name: circuit},
		Season:  flex(2024),
		Type:    "Race",
		Date:    "2024-03-02T15:00:00+00:00",
		Status:  "Completed",
	}
	r.Competition.Name = name
	r.Competition.Location = apisports_client.Location{City: city, Country: country}
	return r
}

func ranking(driverID int, abbr string, pos int) apisports_client.RaceRanking {
	return apisports_client.RaceRanking{
		Driver:   apisports_client.DriverRef{ID: driverID, Abbr: abbr},
		Position: flex(pos),
		Time:     "1:31:44.742",
		Laps:     flex(57),
		Grid:     "1",
		Pits:     flex(2),
	}
}

func newSource() *fakeSource {
	return &fakeSource{
		races: []apisports_client.Race{
			apiRace(1650, "Bahrain Grand Prix", "Bahrain International Circuit", "Sakhir", "Bahrain"),
			apiRace(1651, "Saudi Arabian Grand Prix", "Jeddah Corniche Circuit", "Jeddah", "Saudi Arabia"),
		},
		rankings: map[int][]apisports_client.RaceRanking{
			1650: {ranking(25, "VER", 1), ranking(34, "LEC", 2), ranking(999, "ZZZ", 3)},
			1651: {ranking(25, "VER", 1)},
		},
	}
}

func newTestApp(repo *fakeRepo, src *fakeSource) (*App, *countingPacer) {
	pacer := &countingPacer{}
	drivers := &fakeDrivers{
		byExternalID: map[int]*models.Member{25: verstappen},
		byAcronym:    map[string]*models.Member{"LEC": leclerc},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC))
	return NewApp(repo, src, drivers, pacer, clock), pacer
}

func TestSyncRacesCreatesRacesCircuitsAndPositions(t *testing.T) {
	repo := &fakeRepo{}
	src := newSource()
	app, pacer := newTestApp(repo, src)

	result, err := app.SyncRaces(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2024, result.Season)
	assert.Equal(t, apisports_client.RaceTypeRace, src.raceType)
	assert.Equal(t, 2, result.RacesFetched)
	assert.Equal(t, 2, result.RacesCreated)
	assert.Equal(t, 2, result.CircuitsCreated)
	assert.Equal(t, 3, result.PositionsCreated, "unknown driver is skipped")
	assert.Empty(t, result.Errors, "a driver miss is not an error")
	assert.Equal(t, 2, pacer.waits)

	bahrain := repo.races[0]
	assert.Equal(t, models.RaceStatusCompleted, bahrain.Status)
	assert.Equal(t, "Sakhir, Bahrain", repo.circuits[0].Location)

	positions, err := app.ListPositions(context.Background(), bahrain.ID)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, verstappen.ID, positions[0].DriverID)
	assert.Equal(t, 25, positions[0].Points)
	assert.Equal(t, 57, *positions[0].Laps)
	assert.Equal(t, 2, *positions[0].PitStopCount)
	assert.Equal(t, "1", *positions[0].Grid)
	assert.Equal(t, leclerc.ID, positions[1].DriverID, "resolved by acronym")
	assert.Equal(t, 18, positions[1].Points)
}

func TestSyncRacesMinimalPayload(t *testing.T) {
	race := apisports_client.Race{ID: 1, Status: "completed"}
	race.Competition.Name = "Monaco Grand Prix"
	src := &fakeSource{
		races: []apisports_client.Race{race},
		rankings: map[int][]apisports_client.RaceRanking{
			1: {{Driver: apisports_client.DriverRef{ID: 1}, Position: flex(1)}},
		},
	}
	repo := &fakeRepo{}
	drivers := &fakeDrivers{byExternalID: map[int]*models.Member{1: verstappen}}
	app := NewApp(repo, src, drivers, pacing.NoDelay{}, clockwork.NewFakeClock())

	result, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.RacesCreated)
	assert.Equal(t, 1, result.CircuitsCreated)
	assert.Equal(t, 1, result.PositionsCreated)

	require.Len(t, repo.races, 1)
	assert.Equal(t, models.RaceStatusCompleted, repo.races[0].Status)
	assert.Nil(t, repo.races[0].StartAt, "no date leaves the start unset")
	require.Len(t, repo.circuits, 1)
	assert.Equal(t, "Unknown Circuit", repo.circuits[0].Name)
	require.Len(t, repo.positions, 1)
	assert.Equal(t, verstappen.ID, repo.positions[0].DriverID)
	assert.Equal(t, 25, repo.positions[0].Points)
}

func TestSyncRacesIsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	app, _ := newTestApp(repo, newSource())

	_, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)
	second, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, 0, second.RacesCreated)
	assert.Equal(t, 2, second.RacesUpdated)
	assert.Equal(t, 0, second.CircuitsCreated)
	assert.Equal(t, 2, second.CircuitsUpdated)
	assert.Equal(t, 0, second.PositionsCreated)
	assert.Equal(t, 3, second.PositionsUpdated)
	assert.Len(t, repo.races, 2)
	assert.Len(t, repo.positions, 3, "one position per (race, driver)")
}

func TestSyncRacesMatchesCircuitByLocation(t *testing.T) {
	old := &models.Circuit{ID: uuid.New(), Name: "Sakhir Circuit", Location: "Sakhir, Bahrain"}
	repo := &fakeRepo{circuits: []*models.Circuit{old}}
	src := newSource()
	src.races = src.races[:1]
	app, _ := newTestApp(repo, src)

	result, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CircuitsUpdated)
	assert.Equal(t, "Bahrain International Circuit", old.Name)
	assert.Len(t, repo.circuits, 1)
}

func TestSyncRacesPerRaceErrors(t *testing.T) {
	src := newSource()
	src.races = append(src.races, apiRace(0, "Mystery Grand Prix", "Nowhere", "", ""))
	bad := apiRace(1652, "Australian Grand Prix", "Albert Park", "Melbourne", "Australia")
	bad.Date = "TBC"
	src.races = append(src.races, bad)
	src.rankingsErr = map[int]error{1651: errors.New("API returned status code: 502")}
	app, _ := newTestApp(&fakeRepo{failRace: map[string]bool{}}, src)

	result, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.RacesCreated)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Error fetching rankings for race Saudi Arabian Grand Prix")
	assert.Equal(t, "race Mystery Grand Prix has no API ID", result.Errors[1])
	assert.Contains(t, result.Errors[2], "Error processing race Australian Grand Prix: invalid start date")
}

func TestSyncRacesPositionFailureIsIsolated(t *testing.T) {
	repo := &fakeRepo{failPosition: map[uuid.UUID]bool{leclerc.ID: true}}
	app, _ := newTestApp(repo, newSource())

	result, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, result.PositionsCreated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "in Bahrain Grand Prix")
}

func TestSyncRacesFetchFailures(t *testing.T) {
	src := newSource()
	src.racesErr = errors.New("API returned status code: 403")
	app, _ := newTestApp(&fakeRepo{}, src)

	result, err := app.SyncRaces(context.Background(), 2024)
	require.Error(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)

	empty := newSource()
	empty.races = nil
	app, _ = newTestApp(&fakeRepo{}, empty)

	result, err = app.SyncRaces(context.Background(), 1949)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"no races found for season 1949"}, result.Errors)
}

func TestSyncRacesStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clock := clockwork.NewFakeClock()
	repo := &fakeRepo{}
	app := NewApp(repo, newSource(), &fakeDrivers{}, pacing.NewFixedDelayWithClock(clock, time.Second), clock)

	result, err := app.SyncRaces(ctx, 2024)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Success)
	assert.Len(t, repo.races, 1, "the first race was written before the wait")
	assert.Empty(t, repo.positions)
}

func TestSyncStats(t *testing.T) {
	repo := &fakeRepo{}
	src := newSource()
	src.races[1].Status = "Scheduled"
	app, _ := newTestApp(repo, src)

	_, err := app.SyncRaces(context.Background(), 2024)
	require.NoError(t, err)

	stats, err := app.SyncStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SyncStats{TotalRaces: 2, TotalCircuits: 2, CompletedRaces: 1, ScheduledRaces: 1}, stats)
}

func TestRaceSyncResultSummary(t *testing.T) {
	r := &RaceSyncResult{Success: true, RacesFetched: 24, PositionsCreated: 480}

	assert.True(t, r.OK())
	assert.Equal(t, 24, r.Counts()["races_fetched"])
	assert.Equal(t, 480, r.Counts()["positions_created"])
	assert.Len(t, r.Counts(), 7)
}
