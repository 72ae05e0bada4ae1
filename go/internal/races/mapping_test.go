package races

import (
	"testing"

	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRaceStatus(t *testing.T) {
	tests := []struct {
		in   string
		want models.RaceStatus
	}{
		{"Completed", models.RaceStatusCompleted},
		{"finished", models.RaceStatusCompleted},
		{"live", models.RaceStatusOngoing},
		{"ONGOING", models.RaceStatusOngoing},
		{"scheduled", models.RaceStatusScheduled},
		{"Cancelled", models.RaceStatusCancelled},
		{"canceled", models.RaceStatusCancelled},
		{"banana", models.RaceStatusScheduled},
		{"", models.RaceStatusScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MapRaceStatus(tt.in))
		})
	}
}

func TestPointsForPosition(t *testing.T) {
	assert.Equal(t, 25, PointsForPosition(1))
	assert.Equal(t, 18, PointsForPosition(2))
	assert.Equal(t, 1, PointsForPosition(10))
	assert.Equal(t, 0, PointsForPosition(11))
	assert.Equal(t, 0, PointsForPosition(0))
}

func TestBuildDescription(t *testing.T) {
	full := apisports_client.Race{
		Season:   flex(2024),
		Type:     "Race",
		Distance: "305.879 Kms",
		Laps:     apisports_client.Laps{Total: flex(57)},
	}
	full.FastestLap.Time = "1:32.608"

	assert.Equal(t, "Season: 2024 | Type: Race | Distance: 305.879 Kms | Total Laps: 57 | Fastest Lap: 1:32.608", BuildDescription(full))
	assert.Equal(t, "Type: Race", BuildDescription(apisports_client.Race{Type: "Race"}))
	assert.Equal(t, "Formula 1 Race", BuildDescription(apisports_client.Race{}))
}

func TestMapCircuitLocation(t *testing.T) {
	race := func(city, country string) apisports_client.Race {
		r := apisports_client.Race{Circuit: apisports_client.CircuitRef{Name: "Circuit de Monaco"}}
		r.Competition.Location = apisports_client.Location{City: city, Country: country}
		return r
	}

	assert.Equal(t, "Monte Carlo, Monaco", mapCircuit(race("Monte Carlo", "Monaco")).Location)
	assert.Equal(t, "Monaco", mapCircuit(race("", "Monaco")).Location)
	assert.Equal(t, "Monte Carlo", mapCircuit(race("Monte Carlo", "")).Location)
	assert.Equal(t, "Unknown Location", mapCircuit(race("", "")).Location)
	assert.Equal(t, "Unknown Circuit", mapCircuit(apisports_client.Race{}).Name)
}

func TestMapRaceParsesStart(t *testing.T) {
	r := apisports_client.Race{ID: 1650, Date: "2024-03-02T15:00:00+00:00", Status: "Finished"}
	r.Competition.Name = "Bahrain Grand Prix"

	params, err := mapRace(r)
	require.NoError(t, err)
	assert.Equal(t, 1650, *params.ExternalID)
	assert.Equal(t, "Bahrain Grand Prix", params.Name)
	assert.Equal(t, models.RaceStatusCompleted, params.Status)
	require.NotNil(t, params.StartAt)
	assert.Equal(t, 2024, params.StartAt.Year())
	assert.Equal(t, 15, params.StartAt.UTC().Hour())

	r.Date = "next sunday"
	_, err = mapRace(r)
	assert.Error(t, err)

	r.Date = "  "
	params, err = mapRace(r)
	require.NoError(t, err)
	assert.Nil(t, params.StartAt)
}
