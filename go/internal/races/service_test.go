package races

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededMux(t *testing.T) (*http.ServeMux, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	app, _ := newTestApp(repo, newSource())
	_, err := app.SyncRaces(t.Context(), 2024)
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewService(app).RegisterRoutes(mux)
	return mux, repo
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleGetRaceEmbedsCircuit(t *testing.T) {
	mux, repo := seededMux(t)

	rec := get(mux, "/api/races/"+repo.races[0].ID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var got RaceDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Bahrain Grand Prix", got.Name)
	require.NotNil(t, got.Circuit)
	assert.Equal(t, "Bahrain International Circuit", got.Circuit.Name)

	assert.Equal(t, http.StatusNotFound, get(mux, "/api/races/"+uuid.NewString()).Code)
	assert.Equal(t, http.StatusBadRequest, get(mux, "/api/races/1650").Code)
}

func TestHandleListRacesAndCircuits(t *testing.T) {
	mux, _ := seededMux(t)

	rec := get(mux, "/api/races")
	require.Equal(t, http.StatusOK, rec.Code)
	var races rest.Page[models.Race]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &races))
	assert.Equal(t, 2, races.Total)

	rec = get(mux, "/api/circuits?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var circuits rest.Page[models.Circuit]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &circuits))
	assert.Len(t, circuits.Items, 1)
	assert.True(t, circuits.HasMore)
}

func TestHandleListPositions(t *testing.T) {
	mux, repo := seededMux(t)

	rec := get(mux, "/api/races/"+repo.races[0].ID.String()+"/positions")
	require.Equal(t, http.StatusOK, rec.Code)
	var positions []models.Position
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &positions))
	assert.Len(t, positions, 2)

	assert.Equal(t, http.StatusNotFound, get(mux, "/api/races/"+uuid.NewString()+"/positions").Code)
}

func TestHandleGetCircuit(t *testing.T) {
	mux, repo := seededMux(t)

	rec := get(mux, "/api/circuits/"+repo.circuits[1].ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var c models.Circuit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Jeddah, Saudi Arabia", c.Location)

	assert.Equal(t, http.StatusNotFound, get(mux, "/api/circuits/"+uuid.NewString()).Code)
}
