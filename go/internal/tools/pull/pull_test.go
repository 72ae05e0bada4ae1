package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/puller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRunTruncatesErrors(t *testing.T) {
	start := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	run := &models.SyncRun{
		Kind:       models.SyncKindRaces,
		Counts:     map[string]int{"races_fetched": 24, "races_created": 3},
		Errors:     []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7"},
		StartedAt:  start,
		FinishedAt: start.Add(5 * time.Minute),
	}

	var buf bytes.Buffer
	printRun(&buf, run)
	out := buf.String()

	assert.Contains(t, out, "Sync of races failed")
	assert.Contains(t, out, "   races_created: 3\n   races_fetched: 24\n")
	assert.Contains(t, out, "   5. e5\n")
	assert.NotContains(t, out, "e6")
	assert.Contains(t, out, "... and 2 more errors")
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, nil)
	assert.Equal(t, "No sync runs recorded\n", buf.String())

	buf.Reset()
	printRuns(&buf, []models.SyncRun{{Kind: models.SyncKindTeams, Source: "api-sports", Success: true}})
	assert.Contains(t, buf.String(), "teams")
	assert.Contains(t, buf.String(), "ok")
}

type echoSync struct {
	token string
}

func (e *echoSync) run(kind models.SyncKind, req *connect.Request[puller.SyncRequest]) *connect.Response[puller.SyncResponse] {
	e.token = req.Header().Get("Authorization")
	return connect.NewResponse(&puller.SyncResponse{Run: &models.SyncRun{
		ID:      uuid.New(),
		Kind:    kind,
		Success: true,
		Counts:  map[string]int{"season": req.Msg.Season},
	}})
}

func (e *echoSync) SyncTeams(ctx context.Context, req *connect.Request[puller.SyncRequest]) (*connect.Response[puller.SyncResponse], error) {
	return e.run(models.SyncKindTeams, req), nil
}

func (e *echoSync) SyncDrivers(ctx context.Context, req *connect.Request[puller.SyncRequest]) (*connect.Response[puller.SyncResponse], error) {
	return e.run(models.SyncKindDrivers, req), nil
}

func (e *echoSync) SyncRaces(ctx context.Context, req *connect.Request[puller.SyncRequest]) (*connect.Response[puller.SyncResponse], error) {
	return e.run(models.SyncKindRaces, req), nil
}

func (e *echoSync) ListSyncRuns(ctx context.Context, req *connect.Request[puller.ListSyncRunsRequest]) (*connect.Response[puller.ListSyncRunsResponse], error) {
	return connect.NewResponse(&puller.ListSyncRunsResponse{Runs: []models.SyncRun{{Kind: req.Msg.Kind}}}), nil
}

func TestRemoteBackend(t *testing.T) {
	svc := &echoSync{}
	mux := http.NewServeMux()
	mux.Handle(puller.NewSyncServiceHandler(svc))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	b := newRemoteBackend(srv.URL, "staff-token")
	run, err := b.Sync(t.Context(), models.SyncKindRaces, 2023)
	require.NoError(t, err)
	assert.Equal(t, models.SyncKindRaces, run.Kind)
	assert.Equal(t, 2023, run.Counts["season"])
	assert.Equal(t, "Bearer staff-token", svc.token)

	runs, err := b.Runs(t.Context(), models.SyncKindTeams, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, models.SyncKindTeams, runs[0].Kind)

	_, err = b.Sync(t.Context(), "pit_stops", 0)
	assert.Error(t, err)
}
