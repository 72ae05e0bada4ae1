package puller

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

type JetStreamConfig struct {
	URL           string
	StreamName    string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
	MaxAge        time.Duration
	Replicas      int
}

func DefaultJetStreamConfig() JetStreamConfig {
	return JetStreamConfig{
		URL:           nats.DefaultURL,
		StreamName:    "SYNC_EVENTS",
		SubjectPrefix: "sync.events",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		MaxAge:        30 * 24 * time.Hour,
		Replicas:      1,
	}
}

// SyncEvent is the message body published when a run finishes
type SyncEvent struct {
	RunID      uuid.UUID       `json:"runId"`
	Kind       models.SyncKind `json:"kind"`
	Source     string          `json:"source"`
	Success    bool            `json:"success"`
	Counts     map[string]int  `json:"counts"`
	ErrorCount int             `json:"errorCount"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
}

func newSyncEvent(run *models.SyncRun) SyncEvent {
	return SyncEvent{
		RunID:      run.ID,
		Kind:       run.Kind,
		Source:     run.Source,
		Success:    run.Success,
		Counts:     run.Counts,
		ErrorCount: len(run.Errors),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
}

// streamPublisher is the part of jetstream.JetStream the publisher uses
type streamPublisher interface {
	PublishMsg(ctx context.Context, msg *nats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamPublisher publishes sync.events.<kind> messages
type JetStreamPublisher struct {
	nc     *nats.Conn
	js     streamPublisher
	config JetStreamConfig
}

func NewJetStreamPublisher(ctx context.Context, cfg JetStreamConfig) (*JetStreamPublisher, error) {
	opts := []nats.Option{
		nats.Name("formulated-puller"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	if err := ensureStream(ctx, js, cfg); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	return &JetStreamPublisher{nc: nc, js: js, config: cfg}, nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, cfg JetStreamConfig) error {
	sc := jetstream.StreamConfig{
		Name:        cfg.StreamName,
		Description: "Finished puller runs",
		Subjects:    []string{cfg.SubjectPrefix + ".>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      cfg.MaxAge,
		Storage:     jetstream.FileStorage,
		Replicas:    cfg.Replicas,
	}

	if _, err := js.CreateOrUpdateStream(ctx, sc); err != nil {
		return err
	}
	log.Info().Str("stream", cfg.StreamName).Msg("JetStream stream ready")
	return nil
}

func (p *JetStreamPublisher) Subject(kind models.SyncKind) string {
	return fmt.Sprintf("%s.%s", p.config.SubjectPrefix, kind)
}

func (p *JetStreamPublisher) Publish(ctx context.Context, run *models.SyncRun) error {
	data, err := json.Marshal(newSyncEvent(run))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := p.Subject(run.Kind)
	ack, err := p.js.PublishMsg(ctx, &nats.Msg{
		Subject: subject,
		Data:    data,
		Header: nats.Header{
			"Sync-Kind": []string{string(run.Kind)},
			"Run-ID":    []string{run.ID.String()},
		},
	},
		jetstream.WithMsgID(run.ID.String()),
		jetstream.WithExpectStream(p.config.StreamName),
	)
	if err != nil {
		return fmt.Errorf("publish to JetStream: %w", err)
	}

	log.Debug().
		Str("subject", subject).
		Uint64("sequence", ack.Sequence).
		Msg("published sync event")
	return nil
}

func (p *JetStreamPublisher) Close() error {
	if p.nc != nil {
		p.nc.Close()
	}
	return nil
}

// NoOpPublisher is used when NATS is not configured
type NoOpPublisher struct{}

func (NoOpPublisher) Publish(ctx context.Context, run *models.SyncRun) error { return nil }
