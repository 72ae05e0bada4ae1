package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/clients/openf1_client"
	"github.com/mcdev12/formulated/go/internal/config"
	"github.com/mcdev12/formulated/go/internal/members"
	membersdb "github.com/mcdev12/formulated/go/internal/members/db"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/mcdev12/formulated/go/internal/puller"
	pullerdb "github.com/mcdev12/formulated/go/internal/puller/db"
	"github.com/mcdev12/formulated/go/internal/races"
	racesdb "github.com/mcdev12/formulated/go/internal/races/db"
	"github.com/mcdev12/formulated/go/internal/teams"
	teamsdb "github.com/mcdev12/formulated/go/internal/teams/db"
	"github.com/mcdev12/formulated/go/internal/users"
	usersdb "github.com/mcdev12/formulated/go/internal/users/db"
)

// backend runs syncs either in process or on a server
type backend interface {
	Sync(ctx context.Context, kind models.SyncKind, season int) (*models.SyncRun, error)
	Runs(ctx context.Context, kind models.SyncKind, limit int) ([]models.SyncRun, error)
	Close()
}

func newBackend(ctx context.Context) (backend, error) {
	if remoteURL != "" {
		return newRemoteBackend(remoteURL, token), nil
	}
	return newLocalBackend(ctx)
}

type localBackend struct {
	db      *sql.DB
	runner  *puller.Runner
	pullers puller.Pullers
	users   *users.App
	closers []func() error
}

func newLocalBackend(ctx context.Context) (*localBackend, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.SetupLogging(cfg.Log); err != nil {
		return nil, err
	}

	database, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Database.Redacted(), err)
	}

	b := &localBackend{db: database}
	clock := clockwork.NewRealClock()

	apiSports := apisports_client.NewAPISportsClient(cfg.Providers.APISports.APIKey)
	apiSports.SetTimeout(cfg.Providers.APISports.Timeout)
	if cfg.Providers.APISports.BaseURL != "" {
		apiSports.SetBaseURL(cfg.Providers.APISports.BaseURL)
	}
	pacer := pacing.NewFixedDelay(cfg.Providers.APISports.RequestDelay)

	var enricher members.DriverEnricher
	b.pullers.DriverSource = puller.SourceAPISports
	if cfg.Providers.OpenF1.Enabled {
		openF1 := openf1_client.NewOpenF1Client()
		openF1.SetTimeout(cfg.Providers.OpenF1.Timeout)
		if cfg.Providers.OpenF1.BaseURL != "" {
			openF1.SetBaseURL(cfg.Providers.OpenF1.BaseURL)
		}
		enricher = openF1
		b.pullers.DriverSource = puller.SourceAPISportsOpenF1
	}

	teamsRepo := teams.NewRepository(teamsdb.New(database), database)
	membersRepo := members.NewRepository(membersdb.New(database), database)
	racesRepo := races.NewRepository(racesdb.New(database), database)

	b.pullers.Teams = teams.NewApp(teamsRepo, apiSports)
	b.pullers.Drivers = members.NewApp(membersRepo, apiSports, enricher, teamsRepo, pacer, clock)
	b.pullers.Races = races.NewApp(racesRepo, apiSports, membersRepo, pacer, clock)
	b.users = users.NewApp(users.NewRepository(usersdb.New(database)))

	var publisher puller.Publisher = puller.NoOpPublisher{}
	if cfg.NATS.URL != "" {
		jsCfg := puller.DefaultJetStreamConfig()
		jsCfg.URL = cfg.NATS.URL
		jsCfg.StreamName = cfg.NATS.Stream
		jsCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
		js, err := puller.NewJetStreamPublisher(ctx, jsCfg)
		if err != nil {
			database.Close()
			return nil, err
		}
		publisher = js
		b.closers = append(b.closers, js.Close)
	}
	b.runner = puller.NewRunner(puller.NewRepository(pullerdb.New(database)), nil, publisher, clock)

	return b, nil
}

func (b *localBackend) Sync(ctx context.Context, kind models.SyncKind, season int) (*models.SyncRun, error) {
	job, source, err := b.pullers.Job(kind, season)
	if err != nil {
		return nil, err
	}
	return b.runner.Run(ctx, kind, source, job)
}

func (b *localBackend) Runs(ctx context.Context, kind models.SyncKind, limit int) ([]models.SyncRun, error) {
	return b.runner.History(ctx, kind, limit, 0)
}

func (b *localBackend) Close() {
	for _, c := range b.closers {
		_ = c()
	}
	b.db.Close()
}

type remoteBackend struct {
	client *puller.SyncServiceClient
}

func newRemoteBackend(baseURL, token string) *remoteBackend {
	// pullers pace every upstream call, so a full season takes minutes
	httpClient := &http.Client{Timeout: time.Hour}
	return &remoteBackend{
		client: puller.NewSyncServiceClient(httpClient, baseURL, connect.WithInterceptors(users.BearerInterceptor(token))),
	}
}

func (b *remoteBackend) Sync(ctx context.Context, kind models.SyncKind, season int) (*models.SyncRun, error) {
	req := connect.NewRequest(&puller.SyncRequest{Season: season})

	var (
		res *connect.Response[puller.SyncResponse]
		err error
	)
	switch kind {
	case models.SyncKindTeams:
		res, err = b.client.SyncTeams(ctx, req)
	case models.SyncKindDrivers:
		res, err = b.client.SyncDrivers(ctx, req)
	case models.SyncKindRaces:
		res, err = b.client.SyncRaces(ctx, req)
	default:
		return nil, fmt.Errorf("unknown sync kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return res.Msg.Run, nil
}

func (b *remoteBackend) Runs(ctx context.Context, kind models.SyncKind, limit int) ([]models.SyncRun, error) {
	res, err := b.client.ListSyncRuns(ctx, connect.NewRequest(&puller.ListSyncRunsRequest{Kind: kind, Limit: limit}))
	if err != nil {
		return nil, err
	}
	return res.Msg.Runs, nil
}

func (b *remoteBackend) Close() {}
