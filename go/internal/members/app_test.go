package members

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/clients/openf1_client"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	members []*models.Member
	fail    map[string]bool
}

func (f *fakeRepo) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) ListMembers(ctx context.Context, limit, offset int) ([]models.Member, int, error) {
	var out []models.Member
	for i, m := range f.members {
		if i >= offset && len(out) < limit {
			out = append(out, *m)
		}
	}
	return out, len(f.members), nil
}

func (f *fakeRepo) ListMembersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Member, error) {
	out := []models.Member{}
	for _, m := range f.members {
		if m.TeamID == teamID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindDriver(ctx context.Context, lookup DriverLookup) (*models.Member, error) {
	return f.find(lookup.ExternalID, lookup.Name, lookup.DriverNumber, lookup.NameAcronym)
}

func (f *fakeRepo) find(externalID *int, name string, number *int, acronym *string) (*models.Member, error) {
	matchers := []func(m *models.Member) bool{
		func(m *models.Member) bool {
			return externalID != nil && m.ExternalID != nil && *m.ExternalID == *externalID
		},
		func(m *models.Member) bool { return m.Name == name },
		func(m *models.Member) bool {
			return number != nil && m.DriverNumber != nil && *m.DriverNumber == *number
		},
		func(m *models.Member) bool {
			return acronym != nil && m.NameAcronym != nil && *m.NameAcronym == *acronym
		},
	}
	for _, match := range matchers {
		for _, m := range f.members {
			if match(m) {
				return m, nil
			}
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) UpsertMember(ctx context.Context, p MemberParams) (*models.Member, bool, error) {
	if f.fail[p.Name] {
		return nil, false, errors.New("constraint violation")
	}
	existing, err := f.find(p.ExternalID, p.Name, p.DriverNumber, nil)
	if err == nil {
		apply(existing, p)
		return existing, false, nil
	}
	m := &models.Member{ID: uuid.New(), CreatedAt: time.Now()}
	apply(m, p)
	f.members = append(f.members, m)
	return m, true, nil
}

func apply(m *models.Member, p MemberParams) {
	m.TeamID = p.TeamID
	m.Name = p.Name
	m.Role = p.Role
	m.Description = p.Description
	m.ExternalID = p.ExternalID
	m.DriverNumber = p.DriverNumber
	m.NameAcronym = p.NameAcronym
	m.CountryCode = p.CountryCode
	m.HeadshotURL = p.HeadshotURL
}

type fakeSource struct {
	rankings    []apisports_client.DriverRanking
	rankingsErr error
	drivers     map[int]apisports_client.Driver
	season      int
	calls       []int
}

func (f *fakeSource) GetDriversRankings(ctx context.Context, season int) ([]apisports_client.DriverRanking, error) {
	f.season = season
	return f.rankings, f.rankingsErr
}

func (f *fakeSource) GetDriver(ctx context.Context, id int) ([]apisports_client.Driver, error) {
	f.calls = append(f.calls, id)
	d, ok := f.drivers[id]
	if !ok {
		return []apisports_client.Driver{}, nil
	}
	return []apisports_client.Driver{d}, nil
}

type fakeEnricher struct {
	drivers []openf1_client.Driver
	err     error
}

func (f *fakeEnricher) GetLatestDrivers(ctx context.Context) ([]openf1_client.Driver, error) {
	return f.drivers, f.err
}

type fakeTeams struct {
	teams []*models.Team
}

func (f *fakeTeams) FindTeam(ctx context.Context, externalID *int, name string) (*models.Team, error) {
	for _, t := range f.teams {
		if externalID != nil && t.ExternalID != nil && *t.ExternalID == *externalID {
			return t, nil
		}
	}
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, models.ErrNotFound
}

type countingPacer struct {
	waits int
	err   error
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return p.err
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func flex(i int) apisports_client.FlexInt { return apisports_client.FlexInt{Value: i, Valid: true} }

var (
	redBull = &models.Team{ID: uuid.New(), ExternalID: intPtr(1), Name: "Red Bull Racing"}
	mclaren = &models.Team{ID: uuid.New(), Name: "McLaren Racing"}
)

func seasonTeam(id int, name string) []apisports_client.DriverSeasonTeam {
	return []apisports_client.DriverSeasonTeam{{Season: flex(2024), Team: apisports_client.TeamRef{ID: id, Name: name}}}
}

func newSource() *fakeSource {
	return &fakeSource{
		rankings: []apisports_client.DriverRanking{
			{Position: flex(1), Driver: apisports_client.DriverRef{ID: 25, Name: "Max Verstappen"}},
			{Position: flex(2), Driver: apisports_client.DriverRef{ID: 49, Name: "Lando Norris"}},
		},
		drivers: map[int]apisports_client.Driver{
			25: {ID: 25, Name: "Max Verstappen", Abbr: "VER", Number: flex(1), Country: apisports_client.Country{Code: "NL"},
				Image: "https://img/ver.png", Teams: seasonTeam(1, "Red Bull Racing")},
			49: {ID: 49, Name: "Lando Norris", Number: flex(4), Teams: seasonTeam(7, "McLaren Racing")},
		},
	}
}

func newTestApp(repo *fakeRepo, src *fakeSource, enricher DriverEnricher) (*App, *countingPacer) {
	pacer := &countingPacer{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	return NewApp(repo, src, enricher, &fakeTeams{teams: []*models.Team{redBull, mclaren}}, pacer, clock), pacer
}

func TestSyncDriversCreatesThenUpdates(t *testing.T) {
	repo := &fakeRepo{}
	src := newSource()
	app, pacer := newTestApp(repo, src, nil)

	first, err := app.SyncDrivers(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, 2024, src.season, "defaults to the clock's year")
	assert.Equal(t, 2, first.DriversFetched)
	assert.Equal(t, 2, first.DriversCreated)
	assert.Empty(t, first.Errors)
	assert.Equal(t, 3, pacer.waits, "one wait before rankings and one per driver")

	second, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, second.DriversCreated)
	assert.Equal(t, 2, second.DriversUpdated)
	assert.Len(t, repo.members, 2)
}

func TestSyncDriversMapsFields(t *testing.T) {
	repo := &fakeRepo{}
	app, _ := newTestApp(repo, newSource(), nil)

	_, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)

	ver := repo.members[0]
	assert.Equal(t, "Max Verstappen", ver.Name)
	assert.Equal(t, "F1 Driver - Max Verstappen", ver.Description)
	assert.Equal(t, models.MemberRoleDriver, ver.Role)
	assert.Equal(t, redBull.ID, ver.TeamID)
	assert.Equal(t, 25, *ver.ExternalID)
	assert.Equal(t, 1, *ver.DriverNumber)
	assert.Equal(t, "VER", *ver.NameAcronym)
	assert.Equal(t, "NL", *ver.CountryCode)

	nor := repo.members[1]
	assert.Equal(t, mclaren.ID, nor.TeamID, "team resolved by name when its external id is unknown")
	assert.Nil(t, nor.NameAcronym)
}

func TestSyncDriversEnrichesBlankFields(t *testing.T) {
	repo := &fakeRepo{}
	enricher := &fakeEnricher{drivers: []openf1_client.Driver{
		{DriverNumber: 4, NameAcronym: "NOR", CountryCode: "GBR", HeadshotURL: "https://openf1/nor.png"},
		{DriverNumber: 1, NameAcronym: "XXX", CountryCode: "NED"},
	}}
	app, _ := newTestApp(repo, newSource(), enricher)

	_, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)

	ver, nor := repo.members[0], repo.members[1]
	assert.Equal(t, "VER", *ver.NameAcronym, "provider values win over enrichment")
	assert.Equal(t, "NL", *ver.CountryCode)
	assert.Equal(t, "NOR", *nor.NameAcronym)
	assert.Equal(t, "GBR", *nor.CountryCode)
	assert.Equal(t, "https://openf1/nor.png", *nor.HeadshotURL)
}

func TestSyncDriversEnrichmentFailureIsNotFatal(t *testing.T) {
	app, _ := newTestApp(&fakeRepo{}, newSource(), &fakeEnricher{err: errors.New("openf1 down")})

	result, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.DriversCreated)
}

func TestSyncDriversMatchesByCarNumber(t *testing.T) {
	seeded := &models.Member{ID: uuid.New(), Name: "M. Verstappen", DriverNumber: intPtr(1), Role: models.MemberRoleOther}
	repo := &fakeRepo{members: []*models.Member{seeded}}
	app, _ := newTestApp(repo, newSource(), nil)

	result, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, result.DriversUpdated)
	assert.Equal(t, 1, result.DriversCreated)
	assert.Equal(t, "Max Verstappen", seeded.Name)
	assert.Equal(t, models.MemberRoleDriver, seeded.Role)
}

func TestSyncDriversPerDriverErrors(t *testing.T) {
	src := newSource()
	src.rankings = append(src.rankings,
		apisports_client.DriverRanking{Driver: apisports_client.DriverRef{ID: 99}},
		apisports_client.DriverRanking{Driver: apisports_client.DriverRef{ID: 25}},
	)
	src.drivers[49] = apisports_client.Driver{ID: 49, Name: "Lando Norris", Teams: seasonTeam(30, "Unknown GP")}
	app, _ := newTestApp(&fakeRepo{}, src, nil)

	result, err := app.SyncDrivers(context.Background(), 2024)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.DriversFetched, "duplicate ids in the standings are fetched once")
	assert.Equal(t, 1, result.DriversCreated)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Error processing driver (49): team not found for driver Lando Norris: Unknown GP", result.Errors[0])
	assert.Equal(t, "Error processing driver (99): driver not found: 99", result.Errors[1])
}

func TestSyncDriversRankingsFailures(t *testing.T) {
	src := newSource()
	src.rankingsErr = errors.New("API returned status code: 429")
	app, _ := newTestApp(&fakeRepo{}, src, nil)

	result, err := app.SyncDrivers(context.Background(), 2024)
	require.Error(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "429")
	assert.Empty(t, src.calls)

	empty := newSource()
	empty.rankings = nil
	app, _ = newTestApp(&fakeRepo{}, empty, nil)

	result, err = app.SyncDrivers(context.Background(), 2023)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"No drivers found in rankings for season 2023"}, result.Errors)
}

func TestSyncDriversStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clock := clockwork.NewFakeClock()
	src := newSource()
	app := NewApp(&fakeRepo{}, src, nil, &fakeTeams{}, pacing.NewFixedDelayWithClock(clock, time.Second), clock)

	result, err := app.SyncDrivers(ctx, 2024)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Success)
	assert.Empty(t, src.calls)
}

func TestFindDriverPrecedence(t *testing.T) {
	byAcronym := &models.Member{ID: uuid.New(), Name: "A", NameAcronym: strPtr("HAM")}
	byNumber := &models.Member{ID: uuid.New(), Name: "B", DriverNumber: intPtr(44)}
	repo := &fakeRepo{members: []*models.Member{byAcronym, byNumber}}
	app, _ := newTestApp(repo, newSource(), nil)

	got, err := app.FindDriver(context.Background(), DriverLookup{Name: "Lewis Hamilton", DriverNumber: intPtr(44), NameAcronym: strPtr("HAM")})
	require.NoError(t, err)
	assert.Equal(t, byNumber.ID, got.ID, "car number outranks acronym")

	_, err = app.FindDriver(context.Background(), DriverLookup{Name: "Nobody"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDriverSyncResultSummary(t *testing.T) {
	r := &DriverSyncResult{Success: true, DriversFetched: 20, DriversCreated: 2, DriversUpdated: 18}

	assert.True(t, r.OK())
	assert.Equal(t, map[string]int{"drivers_fetched": 20, "drivers_created": 2, "drivers_updated": 18}, r.Counts())
	assert.Empty(t, r.ErrorMessages())
}
