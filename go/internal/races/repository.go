package races

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/races/db"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
)

// Repository implements circuit, race and position data access
type Repository struct {
	db      sqlutil.TxStarter
	queries *db.Queries
}

// NewRepository creates a new races repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		db:      database,
		queries: queries,
	}
}

func (r *Repository) GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error) {
	c, err := r.queries.GetCircuit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get circuit: %w", sqlutil.NotFound(err))
	}
	return dbCircuitToModel(c), nil
}

func (r *Repository) ListCircuits(ctx context.Context, limit, offset int) ([]models.Circuit, int, error) {
	rows, err := r.queries.ListCircuits(ctx, db.ListCircuitsParams{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list circuits: %w", err)
	}
	total, err := r.queries.CountCircuits(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count circuits: %w", err)
	}

	circuits := make([]models.Circuit, len(rows))
	for i, c := range rows {
		circuits[i] = *dbCircuitToModel(c)
	}
	return circuits, int(total), nil
}

func (r *Repository) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	race, err := r.queries.GetRace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get race: %w", sqlutil.NotFound(err))
	}
	return dbRaceToModel(race), nil
}

func (r *Repository) ListRaces(ctx context.Context, limit, offset int) ([]models.Race, int, error) {
	rows, err := r.queries.ListRaces(ctx, db.ListRacesParams{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list races: %w", err)
	}
	total, err := r.queries.CountRaces(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count races: %w", err)
	}

	races := make([]models.Race, len(rows))
	for i, race := range rows {
		races[i] = *dbRaceToModel(race)
	}
	return races, int(total), nil
}

func (r *Repository) ListPositions(ctx context.Context, raceID uuid.UUID) ([]models.Position, error) {
	rows, err := r.queries.ListPositionsByRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	positions := make([]models.Position, len(rows))
	for i, p := range rows {
		positions[i] = *dbPositionToModel(p)
	}
	return positions, nil
}

// Stats counts races by status and circuits overall
func (r *Repository) Stats(ctx context.Context) (*SyncStats, error) {
	races, err := r.queries.CountRaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count races: %w", err)
	}
	circuits, err := r.queries.CountCircuits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count circuits: %w", err)
	}
	byStatus, err := r.queries.CountRacesByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count races by status: %w", err)
	}

	stats := &SyncStats{TotalRaces: int(races), TotalCircuits: int(circuits)}
	for _, row := range byStatus {
		switch models.RaceStatus(row.Status) {
		case models.RaceStatusCompleted:
			stats.CompletedRaces = int(row.Total)
		case models.RaceStatusScheduled:
			stats.ScheduledRaces = int(row.Total)
		case models.RaceStatusOngoing:
			stats.OngoingRaces = int(row.Total)
		case models.RaceStatusCancelled:
			stats.CancelledRaces = int(row.Total)
		}
	}
	return stats, nil
}

// UpsertRace resolves the circuit and then the race in a single transaction.
// A matched circuit has its name and location overwritten.
func (r *Repository) UpsertRace(ctx context.Context, circuit CircuitParams, race RaceParams) (*RaceWrite, error) {
	out := &RaceWrite{}

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		c, created, err := upsertCircuit(ctx, q, circuit)
		if err != nil {
			return err
		}
		out.CircuitCreated = created

		existing, err := q.FindRaceForSync(ctx, db.FindRaceForSyncParams{
			ExternalID: sqlutil.ToSqlInt32(race.ExternalID),
			Name:       race.Name,
			CircuitID:  c.ID,
		})
		err = sqlutil.NotFound(err)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to find race: %w", err)
		}

		if err == nil {
			row, err := q.UpdateRace(ctx, db.UpdateRaceParams{
				ID:          existing.ID,
				ExternalID:  sqlutil.ToSqlInt32(race.ExternalID),
				CircuitID:   c.ID,
				Name:        race.Name,
				Description: race.Description,
				StartAt:     sqlutil.ToSqlTime(race.StartAt),
				Status:      string(race.Status),
			})
			if err != nil {
				return fmt.Errorf("failed to update race: %w", err)
			}
			out.Race = dbRaceToModel(row)
			return nil
		}

		row, err := q.CreateRace(ctx, db.CreateRaceParams{
			ExternalID:  sqlutil.ToSqlInt32(race.ExternalID),
			CircuitID:   c.ID,
			Name:        race.Name,
			Description: race.Description,
			StartAt:     sqlutil.ToSqlTime(race.StartAt),
			Status:      string(race.Status),
		})
		if err != nil {
			return fmt.Errorf("failed to create race: %w", err)
		}
		out.Race, out.RaceCreated = dbRaceToModel(row), true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func upsertCircuit(ctx context.Context, q *db.Queries, params CircuitParams) (db.Circuit, bool, error) {
	existing, err := q.FindCircuitForSync(ctx, db.FindCircuitForSyncParams{
		Name:     params.Name,
		Location: params.Location,
	})
	err = sqlutil.NotFound(err)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return db.Circuit{}, false, fmt.Errorf("failed to find circuit: %w", err)
	}

	if err == nil {
		c, err := q.UpdateCircuit(ctx, db.UpdateCircuitParams{
			ID:       existing.ID,
			Name:     params.Name,
			Location: params.Location,
		})
		if err != nil {
			return db.Circuit{}, false, fmt.Errorf("failed to update circuit: %w", err)
		}
		return c, false, nil
	}

	c, err := q.CreateCircuit(ctx, db.CreateCircuitParams{
		Name:     params.Name,
		Location: params.Location,
	})
	if err != nil {
		return db.Circuit{}, false, fmt.Errorf("failed to create circuit: %w", err)
	}
	return c, true, nil
}

// UpsertPosition writes one classification entry in its own transaction,
// keyed by (race, driver).
func (r *Repository) UpsertPosition(ctx context.Context, params PositionParams) (*models.Position, bool, error) {
	var (
		position *models.Position
		created  bool
	)

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		existing, err := q.GetPositionByRaceAndDriver(ctx, db.GetPositionByRaceAndDriverParams{
			RaceID:   params.RaceID,
			DriverID: params.DriverID,
		})
		err = sqlutil.NotFound(err)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to find position: %w", err)
		}

		if err == nil {
			row, err := q.UpdatePosition(ctx, db.UpdatePositionParams{
				ID:           existing.ID,
				Position:     int32(params.Position),
				Points:       int32(params.Points),
				Laps:         sqlutil.ToSqlInt32(params.Laps),
				Time:         sqlutil.ToSqlString(params.Time),
				PitStopCount: sqlutil.ToSqlInt32(params.PitStopCount),
				Grid:         sqlutil.ToSqlString(params.Grid),
			})
			if err != nil {
				return fmt.Errorf("failed to update position: %w", err)
			}
			position = dbPositionToModel(row)
			return nil
		}

		row, err := q.CreatePosition(ctx, db.CreatePositionParams{
			RaceID:       params.RaceID,
			DriverID:     params.DriverID,
			Position:     int32(params.Position),
			Points:       int32(params.Points),
			Laps:         sqlutil.ToSqlInt32(params.Laps),
			Time:         sqlutil.ToSqlString(params.Time),
			PitStopCount: sqlutil.ToSqlInt32(params.PitStopCount),
			Grid:         sqlutil.ToSqlString(params.Grid),
		})
		if err != nil {
			return fmt.Errorf("failed to create position: %w", err)
		}
		position, created = dbPositionToModel(row), true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return position, created, nil
}

func dbCircuitToModel(c db.Circuit) *models.Circuit {
	return &models.Circuit{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func dbRaceToModel(r db.Race) *models.Race {
	return &models.Race{
		ID:          r.ID,
		ExternalID:  sqlutil.FromSqlInt32(r.ExternalID),
		CircuitID:   r.CircuitID,
		Name:        r.Name,
		Description: r.Description,
		StartAt:     sqlutil.FromSqlTime(r.StartAt),
		Status:      models.RaceStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func dbPositionToModel(p db.Position) *models.Position {
	return &models.Position{
		ID:           p.ID,
		RaceID:       p.RaceID,
		DriverID:     p.DriverID,
		Position:     int(p.Position),
		Points:       int(p.Points),
		Laps:         sqlutil.FromSqlInt32(p.Laps),
		Time:         sqlutil.FromSqlStringPtr(p.Time),
		PitStopCount: sqlutil.FromSqlInt32(p.PitStopCount),
		Grid:         sqlutil.FromSqlStringPtr(p.Grid),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
