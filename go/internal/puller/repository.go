package puller

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/puller/db"
	"github.com/sqlc-dev/pqtype"
)

// Repository stores sync run history
type Repository struct {
	queries db.Querier
}

func NewRepository(queries db.Querier) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) InsertRun(ctx context.Context, run models.SyncRun) (*models.SyncRun, error) {
	counts, err := toJSONB(run.Counts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode counts: %w", err)
	}
	errs, err := toJSONB(run.Errors)
	if err != nil {
		return nil, fmt.Errorf("failed to encode errors: %w", err)
	}

	row, err := r.queries.InsertSyncRun(ctx, db.InsertSyncRunParams{
		Kind:       string(run.Kind),
		Source:     run.Source,
		Success:    run.Success,
		Counts:     counts,
		Errors:     errs,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert sync run: %w", err)
	}
	return dbRunToModel(row)
}

// ListRuns returns runs newest first, optionally filtered by kind
func (r *Repository) ListRuns(ctx context.Context, kind models.SyncKind, limit, offset int) ([]models.SyncRun, error) {
	var (
		rows []db.SyncRun
		err  error
	)
	if kind == "" {
		rows, err = r.queries.ListSyncRuns(ctx, db.ListSyncRunsParams{Limit: int32(limit), Offset: int32(offset)})
	} else {
		rows, err = r.queries.ListSyncRunsByKind(ctx, db.ListSyncRunsByKindParams{Kind: string(kind), Limit: int32(limit), Offset: int32(offset)})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	runs := make([]models.SyncRun, 0, len(rows))
	for _, row := range rows {
		run, err := dbRunToModel(row)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, nil
}

func toJSONB(v any) (pqtype.NullRawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	if string(raw) == "null" {
		return pqtype.NullRawMessage{}, nil
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

func dbRunToModel(row db.SyncRun) (*models.SyncRun, error) {
	run := &models.SyncRun{
		ID:         row.ID,
		Kind:       models.SyncKind(row.Kind),
		Source:     row.Source,
		Success:    row.Success,
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
	}
	if row.Counts.Valid {
		if err := json.Unmarshal(row.Counts.RawMessage, &run.Counts); err != nil {
			return nil, fmt.Errorf("failed to decode counts of run %s: %w", row.ID, err)
		}
	}
	if row.Errors.Valid {
		if err := json.Unmarshal(row.Errors.RawMessage, &run.Errors); err != nil {
			return nil, fmt.Errorf("failed to decode errors of run %s: %w", row.ID, err)
		}
	}
	return run, nil
}
