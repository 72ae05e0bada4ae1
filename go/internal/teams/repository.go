package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
	"github.com/mcdev12/formulated/go/internal/teams/db"
)

// Repository implements team data access operations
type Repository struct {
	db      sqlutil.TxStarter
	queries *db.Queries
}

// NewRepository creates a new teams repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		db:      database,
		queries: queries,
	}
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", sqlutil.NotFound(err))
	}
	return dbTeamToModel(dbTeam), nil
}

// ListTeams returns one page of teams ordered by name and the total count
func (r *Repository) ListTeams(ctx context.Context, limit, offset int) ([]models.Team, int, error) {
	dbTeams, err := r.queries.ListTeams(ctx, db.ListTeamsParams{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}
	total, err := r.queries.CountTeams(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *dbTeamToModel(dbTeam)
	}
	return teams, int(total), nil
}

// FindTeam looks a team up by external id, falling back to exact name.
func (r *Repository) FindTeam(ctx context.Context, externalID *int, name string) (*models.Team, error) {
	dbTeam, err := r.queries.FindTeamForSync(ctx, db.FindTeamForSyncParams{
		ExternalID: sqlutil.ToSqlInt32(externalID),
		Name:       name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", sqlutil.NotFound(err))
	}
	return dbTeamToModel(dbTeam), nil
}

// UpsertTeam finds the team by external id or name and overwrites it, or
// creates it, inside one transaction. Returns true when a row was created.
func (r *Repository) UpsertTeam(ctx context.Context, params TeamParams) (*models.Team, bool, error) {
	var (
		team    *models.Team
		created bool
	)

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		existing, err := q.FindTeamForSync(ctx, db.FindTeamForSyncParams{
			ExternalID: sqlutil.ToSqlInt32(params.ExternalID),
			Name:       params.Name,
		})
		switch err = sqlutil.NotFound(err); {
		case err == nil:
			row, err := q.UpdateTeam(ctx, toUpdateParams(existing.ID, params))
			if err != nil {
				return fmt.Errorf("failed to update team: %w", err)
			}
			team = dbTeamToModel(row)
		case errors.Is(err, models.ErrNotFound):
			row, err := q.CreateTeam(ctx, toCreateParams(params))
			if err != nil {
				return fmt.Errorf("failed to create team: %w", err)
			}
			team, created = dbTeamToModel(row), true
		default:
			return fmt.Errorf("failed to find team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return team, created, nil
}

func toCreateParams(p TeamParams) db.CreateTeamParams {
	return db.CreateTeamParams{
		ExternalID:         sqlutil.ToSqlInt32(p.ExternalID),
		Name:               p.Name,
		Description:        p.Description,
		Status:             string(p.Status),
		LogoUrl:            sqlutil.ToSqlString(p.LogoURL),
		Base:               sqlutil.ToSqlString(p.Base),
		FirstTeamEntry:     sqlutil.ToSqlInt32(p.FirstTeamEntry),
		WorldChampionships: sqlutil.ToSqlInt32(p.WorldChampionships),
		HighestRaceFinish:  sqlutil.ToSqlInt32(p.HighestRaceFinish),
		PolePositions:      sqlutil.ToSqlInt32(p.PolePositions),
		FastestLaps:        sqlutil.ToSqlInt32(p.FastestLaps),
		President:          sqlutil.ToSqlString(p.President),
		Director:           sqlutil.ToSqlString(p.Director),
		TechnicalManager:   sqlutil.ToSqlString(p.TechnicalManager),
		Chassis:            sqlutil.ToSqlString(p.Chassis),
		Engine:             sqlutil.ToSqlString(p.Engine),
		Tyres:              sqlutil.ToSqlString(p.Tyres),
	}
}

func toUpdateParams(id uuid.UUID, p TeamParams) db.UpdateTeamParams {
	c := toCreateParams(p)
	return db.UpdateTeamParams{
		ID:                 id,
		ExternalID:         c.ExternalID,
		Name:               c.Name,
		Description:        c.Description,
		Status:             c.Status,
		LogoUrl:            c.LogoUrl,
		Base:               c.Base,
		FirstTeamEntry:     c.FirstTeamEntry,
		WorldChampionships: c.WorldChampionships,
		HighestRaceFinish:  c.HighestRaceFinish,
		PolePositions:      c.PolePositions,
		FastestLaps:        c.FastestLaps,
		President:          c.President,
		Director:           c.Director,
		TechnicalManager:   c.TechnicalManager,
		Chassis:            c.Chassis,
		Engine:             c.Engine,
		Tyres:              c.Tyres,
	}
}

// dbTeamToModel converts a database team to domain model
func dbTeamToModel(t db.Team) *models.Team {
	return &models.Team{
		ID:                 t.ID,
		ExternalID:         sqlutil.FromSqlInt32(t.ExternalID),
		Name:               t.Name,
		Description:        t.Description,
		Status:             models.TeamStatus(t.Status),
		LogoURL:            sqlutil.FromSqlStringPtr(t.LogoUrl),
		Base:               sqlutil.FromSqlStringPtr(t.Base),
		FirstTeamEntry:     sqlutil.FromSqlInt32(t.FirstTeamEntry),
		WorldChampionships: sqlutil.FromSqlInt32(t.WorldChampionships),
		HighestRaceFinish:  sqlutil.FromSqlInt32(t.HighestRaceFinish),
		PolePositions:      sqlutil.FromSqlInt32(t.PolePositions),
		FastestLaps:        sqlutil.FromSqlInt32(t.FastestLaps),
		President:          sqlutil.FromSqlStringPtr(t.President),
		Director:           sqlutil.FromSqlStringPtr(t.Director),
		TechnicalManager:   sqlutil.FromSqlStringPtr(t.TechnicalManager),
		Chassis:            sqlutil.FromSqlStringPtr(t.Chassis),
		Engine:             sqlutil.FromSqlStringPtr(t.Engine),
		Tyres:              sqlutil.FromSqlStringPtr(t.Tyres),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
