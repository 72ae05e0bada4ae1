package puller

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/rs/zerolog/log"
)

// SyncResult is the summary every puller returns
type SyncResult interface {
	OK() bool
	Counts() map[string]int
	ErrorMessages() []string
}

// Job runs one puller to completion
type Job func(ctx context.Context) (SyncResult, error)

// RunStore persists run history
type RunStore interface {
	InsertRun(ctx context.Context, run models.SyncRun) (*models.SyncRun, error)
	ListRuns(ctx context.Context, kind models.SyncKind, limit, offset int) ([]models.SyncRun, error)
}

// Recorder observes finished runs
type Recorder interface {
	ObserveRun(run *models.SyncRun)
}

// Publisher announces finished runs to other services
type Publisher interface {
	Publish(ctx context.Context, run *models.SyncRun) error
}

// Runner executes pullers synchronously and records what they did. Only
// the job decides the outcome; history, metrics and events are best effort.
type Runner struct {
	store     RunStore
	metrics   Recorder
	publisher Publisher
	clock     clockwork.Clock
}

func NewRunner(store RunStore, metrics Recorder, publisher Publisher, clock clockwork.Clock) *Runner {
	if publisher == nil {
		publisher = NoOpPublisher{}
	}
	return &Runner{store: store, metrics: metrics, publisher: publisher, clock: clock}
}

// Run executes job and returns the recorded run. The error is the job's
// fatal error, if any.
func (r *Runner) Run(ctx context.Context, kind models.SyncKind, source string, job Job) (*models.SyncRun, error) {
	logger := log.With().Str("kind", string(kind)).Str("source", source).Logger()
	logger.Info().Msg("sync started")

	run := models.SyncRun{Kind: kind, Source: source, StartedAt: r.clock.Now()}
	result, err := job(ctx)
	run.FinishedAt = r.clock.Now()

	if result != nil {
		run.Success = result.OK()
		run.Counts = result.Counts()
		run.Errors = result.ErrorMessages()
	}
	if err != nil {
		run.Success = false
		if len(run.Errors) == 0 {
			run.Errors = []string{err.Error()}
		}
	}

	// a cancelled run is still worth recording
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if saved, serr := r.store.InsertRun(recordCtx, run); serr != nil {
		logger.Error().Err(serr).Msg("failed to record sync run")
	} else {
		run = *saved
	}

	if r.metrics != nil {
		r.metrics.ObserveRun(&run)
	}

	if perr := r.publisher.Publish(recordCtx, &run); perr != nil {
		logger.Error().Err(perr).Msg("failed to publish sync event")
	}

	event := logger.Info()
	if !run.Success {
		event = logger.Warn()
	}
	event.Bool("success", run.Success).
		Interface("counts", run.Counts).
		Int("errors", len(run.Errors)).
		Dur("took", run.FinishedAt.Sub(run.StartedAt)).
		Msg("sync finished")

	return &run, err
}

// History lists recorded runs, newest first. An empty kind lists all kinds.
func (r *Runner) History(ctx context.Context, kind models.SyncKind, limit, offset int) ([]models.SyncRun, error) {
	return r.store.ListRuns(ctx, kind, limit, offset)
}
