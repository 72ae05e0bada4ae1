package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/clients"
	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/clients/openf1_client"
	"github.com/mcdev12/formulated/go/internal/config"
	"github.com/mcdev12/formulated/go/internal/interactions"
	interactionsdb "github.com/mcdev12/formulated/go/internal/interactions/db"
	"github.com/mcdev12/formulated/go/internal/members"
	membersdb "github.com/mcdev12/formulated/go/internal/members/db"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/mcdev12/formulated/go/internal/puller"
	pullerdb "github.com/mcdev12/formulated/go/internal/puller/db"
	"github.com/mcdev12/formulated/go/internal/races"
	racesdb "github.com/mcdev12/formulated/go/internal/races/db"
	"github.com/mcdev12/formulated/go/internal/teams"
	teamsdb "github.com/mcdev12/formulated/go/internal/teams/db"
	"github.com/mcdev12/formulated/go/internal/users"
	usersdb "github.com/mcdev12/formulated/go/internal/users/db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Teams        *teams.Service
	Members      *members.Service
	Races        *races.Service
	Users        *users.Service
	Interactions *interactions.Service
	Sync         *puller.Service

	Sessions  *users.Sessions
	UserApp   *users.App
	Registry  *prometheus.Registry
	Database  *sql.DB
	Upstreams map[string]upstream

	closers []func() error
}

func (s *Services) Close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			log.Error().Err(err).Msg("failed to close service dependency")
		}
	}
}

func setupServices(ctx context.Context, cfg *config.Config, database *sql.DB) (*Services, error) {
	// Database → Repository → App → Service
	clock := clockwork.NewRealClock()
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services := &Services{Registry: registry, Database: database, Upstreams: map[string]upstream{}}

	// Upstream providers
	apiSports := apisports_client.NewAPISportsClient(cfg.Providers.APISports.APIKey)
	apiSports.SetTimeout(cfg.Providers.APISports.Timeout)
	if cfg.Providers.APISports.BaseURL != "" {
		apiSports.SetBaseURL(cfg.Providers.APISports.BaseURL)
	}
	if cfg.Providers.APISports.APIKey == "" {
		log.Warn().Msg("APISPORTS_API_KEY is not set, pullers will fail")
	}
	apiSportsPacer := pacing.NewFixedDelay(cfg.Providers.APISports.RequestDelay)

	var enricher members.DriverEnricher
	driverSource := puller.SourceAPISports
	if cfg.Providers.OpenF1.Enabled {
		openF1 := openf1_client.NewOpenF1Client()
		openF1.SetTimeout(cfg.Providers.OpenF1.Timeout)
		if cfg.Providers.OpenF1.BaseURL != "" {
			openF1.SetBaseURL(cfg.Providers.OpenF1.BaseURL)
		}
		enricher = openF1
		driverSource = puller.SourceAPISportsOpenF1
		services.Upstreams[string(clients.ExternalSourceOpenF1)] = openF1
	}

	// Teams
	teamsRepo := teams.NewRepository(teamsdb.New(database), database)
	teamsApp := teams.NewApp(teamsRepo, apiSports)
	services.Teams = teams.NewService(teamsApp)

	// Members
	membersRepo := members.NewRepository(membersdb.New(database), database)
	membersApp := members.NewApp(membersRepo, apiSports, enricher, teamsRepo, apiSportsPacer, clock)
	services.Members = members.NewService(membersApp)

	// Races
	racesRepo := races.NewRepository(racesdb.New(database), database)
	racesApp := races.NewApp(racesRepo, apiSports, membersRepo, apiSportsPacer, clock)
	services.Races = races.NewService(racesApp)

	// Users
	usersApp := users.NewApp(users.NewRepository(usersdb.New(database)))
	usersApp.SetCost(cfg.Auth.BcryptCost)
	services.UserApp = usersApp
	services.Sessions = users.NewSessions(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, clock)
	services.Users = users.NewService(usersApp, services.Sessions, cfg.Server.SecureCookies)

	// Interactions
	resolver := interactions.NewResolver(teamsRepo, membersRepo, racesRepo)
	interactionsApp := interactions.NewApp(interactions.NewRepository(interactionsdb.New(database)), resolver)
	services.Interactions = interactions.NewService(interactionsApp)

	// Admin sync
	var publisher puller.Publisher = puller.NoOpPublisher{}
	if cfg.NATS.URL != "" {
		jsCfg := puller.DefaultJetStreamConfig()
		jsCfg.URL = cfg.NATS.URL
		jsCfg.StreamName = cfg.NATS.Stream
		jsCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
		js, err := puller.NewJetStreamPublisher(ctx, jsCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to set up sync event publisher: %w", err)
		}
		publisher = js
		services.closers = append(services.closers, js.Close)
	}

	runner := puller.NewRunner(puller.NewRepository(pullerdb.New(database)), puller.NewMetrics(registry), publisher, clock)
	services.Sync = puller.NewService(runner, puller.Pullers{
		Teams:        teamsApp,
		Drivers:      membersApp,
		Races:        racesApp,
		DriverSource: driverSource,
	})

	return services, nil
}
