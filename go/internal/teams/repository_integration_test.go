//go:build integration

package teams_test

import (
	"database/sql"
	"testing"

	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/teams"
	teamsdb "github.com/mcdev12/formulated/go/internal/teams/db"
	"github.com/mcdev12/formulated/go/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRepository_FindTeamPrecedence(t *testing.T) {
	database := testinfra.NewPostgres(t)
	ctx := t.Context()
	queries := teamsdb.New(database)
	repo := teams.NewRepository(queries, database)

	insert := func(externalID *int, name string) *models.Team {
		t.Helper()
		row, err := queries.CreateTeam(ctx, teamsdb.CreateTeamParams{
			ExternalID: sqlNullInt(externalID),
			Name:       name,
			Status:     string(models.TeamStatusActive),
		})
		require.NoError(t, err)
		team, err := repo.GetTeam(ctx, row.ID)
		require.NoError(t, err)
		return team
	}

	alpine := insert(intPtr(10), "Alpine")
	ferrari := insert(nil, "Ferrari")
	haasOld := insert(nil, "Haas")
	haasNew := insert(nil, "Haas")

	tests := []struct {
		name       string
		externalID *int
		teamName   string
		want       *models.Team
	}{
		{"external id beats a name match on another row", intPtr(10), "Ferrari", alpine},
		{"name when external id is absent", nil, "Ferrari", ferrari},
		{"name when external id is unknown", intPtr(99), "Ferrari", ferrari},
		{"oldest row among equal names", nil, "Haas", haasOld},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindTeam(ctx, tt.externalID, tt.teamName)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
		})
	}
	assert.NotEqual(t, haasOld.ID, haasNew.ID)

	t.Run("no match", func(t *testing.T) {
		_, err := repo.FindTeam(ctx, intPtr(99), "Williams")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("upsert overwrites the external id match", func(t *testing.T) {
		team, created, err := repo.UpsertTeam(ctx, teams.TeamParams{
			ExternalID: intPtr(10),
			Name:       "Ferrari",
			Status:     models.TeamStatusActive,
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, alpine.ID, team.ID)
		assert.Equal(t, "Ferrari", team.Name)

		_, total, err := repo.ListTeams(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})
}

func sqlNullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
