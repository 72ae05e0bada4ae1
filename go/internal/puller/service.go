package puller

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/mcdev12/formulated/go/internal/members"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/races"
	"github.com/mcdev12/formulated/go/internal/teams"
)

// Upstream names recorded on each run
const (
	SourceAPISports       = "api-sports"
	SourceAPISportsOpenF1 = "api-sports+openf1"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type TeamSyncer interface {
	SyncTeams(ctx context.Context) (*teams.TeamSyncResult, error)
}

type DriverSyncer interface {
	SyncDrivers(ctx context.Context, season int) (*members.DriverSyncResult, error)
}

type RaceSyncer interface {
	SyncRaces(ctx context.Context, season int) (*races.RaceSyncResult, error)
}

// Pullers groups the jobs an operator can trigger
type Pullers struct {
	Teams   TeamSyncer
	Drivers DriverSyncer
	Races   RaceSyncer
	// DriverSource is recorded on driver runs, SourceAPISports when empty
	DriverSource string
}

// TeamsJob adapts the team puller to a Job
func TeamsJob(p TeamSyncer) Job {
	return func(ctx context.Context) (SyncResult, error) {
		res, err := p.SyncTeams(ctx)
		if res == nil {
			return nil, err
		}
		return res, err
	}
}

func DriversJob(p DriverSyncer, season int) Job {
	return func(ctx context.Context) (SyncResult, error) {
		res, err := p.SyncDrivers(ctx, season)
		if res == nil {
			return nil, err
		}
		return res, err
	}
}

func RacesJob(p RaceSyncer, season int) Job {
	return func(ctx context.Context) (SyncResult, error) {
		res, err := p.SyncRaces(ctx, season)
		if res == nil {
			return nil, err
		}
		return res, err
	}
}

// Job returns the job and source for kind
func (p Pullers) Job(kind models.SyncKind, season int) (Job, string, error) {
	switch kind {
	case models.SyncKindTeams:
		return TeamsJob(p.Teams), SourceAPISports, nil
	case models.SyncKindDrivers:
		source := p.DriverSource
		if source == "" {
			source = SourceAPISports
		}
		return DriversJob(p.Drivers, season), source, nil
	case models.SyncKindRaces:
		return RacesJob(p.Races, season), SourceAPISports, nil
	default:
		return nil, "", fmt.Errorf("unknown sync kind %q", kind)
	}
}

// Service implements the admin SyncService over a Runner
type Service struct {
	runner  *Runner
	pullers Pullers
}

func NewService(runner *Runner, pullers Pullers) *Service {
	return &Service{runner: runner, pullers: pullers}
}

func (s *Service) SyncTeams(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return s.run(ctx, models.SyncKindTeams, req.Msg.Season)
}

func (s *Service) SyncDrivers(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return s.run(ctx, models.SyncKindDrivers, req.Msg.Season)
}

func (s *Service) SyncRaces(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return s.run(ctx, models.SyncKindRaces, req.Msg.Season)
}

// run reports fatal puller errors inside the returned run. Only a
// cancelled call surfaces as an RPC error.
func (s *Service) run(ctx context.Context, kind models.SyncKind, season int) (*connect.Response[SyncResponse], error) {
	if season < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid season %d", season))
	}

	job, source, err := s.pullers.Job(kind, season)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	run, err := s.runner.Run(ctx, kind, source, job)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, connect.NewError(connect.CodeCanceled, err)
	}

	return connect.NewResponse(&SyncResponse{Run: run}), nil
}

func (s *Service) ListSyncRuns(ctx context.Context, req *connect.Request[ListSyncRunsRequest]) (*connect.Response[ListSyncRunsResponse], error) {
	msg := req.Msg
	switch msg.Kind {
	case "", models.SyncKindTeams, models.SyncKindDrivers, models.SyncKindRaces:
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown sync kind %q", msg.Kind))
	}
	if msg.Offset < 0 || msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit and offset must not be negative"))
	}

	limit := msg.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	runs, err := s.runner.History(ctx, msg.Kind, limit, msg.Offset)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if runs == nil {
		runs = []models.SyncRun{}
	}
	return connect.NewResponse(&ListSyncRunsResponse{Runs: runs}), nil
}
