//go:build integration

package races_test

import (
	"testing"
	"time"

	"github.com/mcdev12/formulated/go/internal/members"
	membersdb "github.com/mcdev12/formulated/go/internal/members/db"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/races"
	racesdb "github.com/mcdev12/formulated/go/internal/races/db"
	"github.com/mcdev12/formulated/go/internal/teams"
	teamsdb "github.com/mcdev12/formulated/go/internal/teams/db"
	"github.com/mcdev12/formulated/go/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRepository_Postgres(t *testing.T) {
	database := testinfra.NewPostgres(t)
	ctx := t.Context()

	teamRepo := teams.NewRepository(teamsdb.New(database), database)
	memberRepo := members.NewRepository(membersdb.New(database), database)
	raceRepo := races.NewRepository(racesdb.New(database), database)

	team, created, err := teamRepo.UpsertTeam(ctx, teams.TeamParams{
		ExternalID: intPtr(1),
		Name:       "Red Bull Racing",
		Status:     models.TeamStatusActive,
	})
	require.NoError(t, err)
	require.True(t, created)

	driver, created, err := memberRepo.UpsertMember(ctx, members.MemberParams{
		TeamID:       team.ID,
		Name:         "Max Verstappen",
		Role:         models.MemberRoleDriver,
		ExternalID:   intPtr(25),
		DriverNumber: intPtr(1),
	})
	require.NoError(t, err)
	require.True(t, created)

	start := time.Date(2024, 5, 26, 13, 0, 0, 0, time.UTC)
	circuit := races.CircuitParams{Name: "Circuit de Monaco", Location: "Monte Carlo"}
	race := races.RaceParams{
		ExternalID: intPtr(1523),
		Name:       "Monaco Grand Prix",
		StartAt:    &start,
		Status:     models.RaceStatusCompleted,
	}

	t.Run("race and circuit are created then updated", func(t *testing.T) {
		first, err := raceRepo.UpsertRace(ctx, circuit, race)
		require.NoError(t, err)
		assert.True(t, first.RaceCreated)
		assert.True(t, first.CircuitCreated)

		race.Description = "Round 8"
		second, err := raceRepo.UpsertRace(ctx, circuit, race)
		require.NoError(t, err)
		assert.False(t, second.RaceCreated)
		assert.False(t, second.CircuitCreated)
		assert.Equal(t, first.Race.ID, second.Race.ID)
		assert.Equal(t, "Round 8", second.Race.Description)

		got, err := raceRepo.GetRace(ctx, first.Race.ID)
		require.NoError(t, err)
		require.NotNil(t, got.StartAt)
		assert.True(t, got.StartAt.Equal(start))
	})

	t.Run("positions are keyed by race and driver", func(t *testing.T) {
		write, err := raceRepo.UpsertRace(ctx, circuit, race)
		require.NoError(t, err)

		params := races.PositionParams{
			RaceID:   write.Race.ID,
			DriverID: driver.ID,
			Position: 6,
			Points:   8,
			Laps:     intPtr(78),
		}
		p1, created, err := raceRepo.UpsertPosition(ctx, params)
		require.NoError(t, err)
		assert.True(t, created)

		params.Position, params.Points = 5, 10
		p2, created, err := raceRepo.UpsertPosition(ctx, params)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, p1.ID, p2.ID)

		positions, err := raceRepo.ListPositions(ctx, write.Race.ID)
		require.NoError(t, err)
		require.Len(t, positions, 1)
		assert.Equal(t, 5, positions[0].Position)
		assert.Equal(t, 10, positions[0].Points)
	})

	t.Run("stats count by status", func(t *testing.T) {
		stats, err := raceRepo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalRaces)
		assert.Equal(t, 1, stats.TotalCircuits)
		assert.Equal(t, 1, stats.CompletedRaces)
	})

	t.Run("missing race is not found", func(t *testing.T) {
		_, err := raceRepo.GetRace(ctx, team.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestRepository_RaceLookupPrecedence(t *testing.T) {
	database := testinfra.NewPostgres(t)
	ctx := t.Context()
	repo := races.NewRepository(racesdb.New(database), database)

	upsert := func(c races.CircuitParams, r races.RaceParams) *races.RaceWrite {
		t.Helper()
		r.Status = models.RaceStatusScheduled
		w, err := repo.UpsertRace(ctx, c, r)
		require.NoError(t, err)
		return w
	}

	monaco := upsert(races.CircuitParams{Name: "Circuit de Monaco", Location: "Monte Carlo, Monaco"},
		races.RaceParams{ExternalID: intPtr(100), Name: "Monaco Grand Prix"})
	monza := upsert(races.CircuitParams{Name: "Monza", Location: "Lombardy"},
		races.RaceParams{ExternalID: intPtr(200), Name: "Italian Grand Prix"})
	imola := upsert(races.CircuitParams{Name: "Imola", Location: "Monza, Italy"},
		races.RaceParams{ExternalID: intPtr(300), Name: "Emilia Romagna Grand Prix"})
	require.True(t, monaco.CircuitCreated)
	require.True(t, monza.CircuitCreated)
	require.True(t, imola.CircuitCreated)

	t.Run("circuit name beats location", func(t *testing.T) {
		w := upsert(races.CircuitParams{Name: "Monza", Location: "Monza, Italy"},
			races.RaceParams{ExternalID: intPtr(200), Name: "Italian Grand Prix"})
		assert.False(t, w.CircuitCreated)
		assert.Equal(t, monza.Race.CircuitID, w.Race.CircuitID)
	})

	// A race with no external id and an unseen name collapses onto the race
	// already held at the same circuit.
	t.Run("circuit match is the last resort", func(t *testing.T) {
		w := upsert(races.CircuitParams{Name: "Imola", Location: "Imola, Italy"},
			races.RaceParams{Name: "Imola Test Day"})
		assert.False(t, w.CircuitCreated)
		assert.False(t, w.RaceCreated)
		assert.Equal(t, imola.Race.ID, w.Race.ID)
		assert.Equal(t, "Imola Test Day", w.Race.Name)
	})

	t.Run("race external id beats name", func(t *testing.T) {
		w := upsert(races.CircuitParams{Name: "Circuit de Monaco", Location: "Monte Carlo, Monaco"},
			races.RaceParams{ExternalID: intPtr(100), Name: "Imola Test Day"})
		assert.False(t, w.RaceCreated)
		assert.Equal(t, monaco.Race.ID, w.Race.ID)
	})

	t.Run("race name beats circuit", func(t *testing.T) {
		w := upsert(races.CircuitParams{Name: "Imola", Location: "Imola, Italy"},
			races.RaceParams{Name: "Italian Grand Prix"})
		assert.False(t, w.RaceCreated)
		assert.Equal(t, monza.Race.ID, w.Race.ID)
	})
}
