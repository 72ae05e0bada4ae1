package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/members/db"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
)

// Repository implements member data access operations
type Repository struct {
	db      sqlutil.TxStarter
	queries *db.Queries
}

// NewRepository creates a new members repository
func NewRepository(queries *db.Queries, database *sql.DB) *Repository {
	return &Repository{
		db:      database,
		queries: queries,
	}
}

func (r *Repository) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	m, err := r.queries.GetMember(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", sqlutil.NotFound(err))
	}
	return dbMemberToModel(m), nil
}

func (r *Repository) ListMembers(ctx context.Context, limit, offset int) ([]models.Member, int, error) {
	rows, err := r.queries.ListMembers(ctx, db.ListMembersParams{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	total, err := r.queries.CountMembers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}
	return dbMembersToModels(rows), int(total), nil
}

func (r *Repository) ListMembersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Member, error) {
	rows, err := r.queries.ListMembersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return dbMembersToModels(rows), nil
}

// FindDriver resolves a driver by external id, name, car number or acronym.
func (r *Repository) FindDriver(ctx context.Context, lookup DriverLookup) (*models.Member, error) {
	m, err := r.queries.FindDriver(ctx, db.FindDriverParams{
		ExternalID:   sqlutil.ToSqlInt32(lookup.ExternalID),
		Name:         lookup.Name,
		DriverNumber: sqlutil.ToSqlInt32(lookup.DriverNumber),
		NameAcronym:  sqlutil.ToSqlString(lookup.NameAcronym),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find driver: %w", sqlutil.NotFound(err))
	}
	return dbMemberToModel(m), nil
}

// UpsertMember matches by external id, name or car number and overwrites
// the row, or creates it, in one transaction.
func (r *Repository) UpsertMember(ctx context.Context, params MemberParams) (*models.Member, bool, error) {
	var (
		member  *models.Member
		created bool
	)

	err := sqlutil.Run(ctx, r.db, r.queries.WithTx, func(q *db.Queries) error {
		existing, err := q.FindMemberForSync(ctx, db.FindMemberForSyncParams{
			ExternalID:   sqlutil.ToSqlInt32(params.ExternalID),
			Name:         params.Name,
			DriverNumber: sqlutil.ToSqlInt32(params.DriverNumber),
		})
		err = sqlutil.NotFound(err)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to find member: %w", err)
		}

		if err == nil {
			row, err := q.UpdateMember(ctx, db.UpdateMemberParams{
				ID:           existing.ID,
				TeamID:       params.TeamID,
				Name:         params.Name,
				Role:         string(params.Role),
				Description:  params.Description,
				ExternalID:   sqlutil.ToSqlInt32(params.ExternalID),
				DriverNumber: sqlutil.ToSqlInt32(params.DriverNumber),
				NameAcronym:  sqlutil.ToSqlString(params.NameAcronym),
				CountryCode:  sqlutil.ToSqlString(params.CountryCode),
				HeadshotUrl:  sqlutil.ToSqlString(params.HeadshotURL),
			})
			if err != nil {
				return fmt.Errorf("failed to update member: %w", err)
			}
			member = dbMemberToModel(row)
			return nil
		}

		row, err := q.CreateMember(ctx, db.CreateMemberParams{
			TeamID:       params.TeamID,
			Name:         params.Name,
			Role:         string(params.Role),
			Description:  params.Description,
			ExternalID:   sqlutil.ToSqlInt32(params.ExternalID),
			DriverNumber: sqlutil.ToSqlInt32(params.DriverNumber),
			NameAcronym:  sqlutil.ToSqlString(params.NameAcronym),
			CountryCode:  sqlutil.ToSqlString(params.CountryCode),
			HeadshotUrl:  sqlutil.ToSqlString(params.HeadshotURL),
		})
		if err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		member, created = dbMemberToModel(row), true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return member, created, nil
}

func dbMembersToModels(rows []db.Member) []models.Member {
	out := make([]models.Member, len(rows))
	for i, m := range rows {
		out[i] = *dbMemberToModel(m)
	}
	return out
}

func dbMemberToModel(m db.Member) *models.Member {
	return &models.Member{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Role:         models.MemberRole(m.Role),
		Description:  m.Description,
		ExternalID:   sqlutil.FromSqlInt32(m.ExternalID),
		DriverNumber: sqlutil.FromSqlInt32(m.DriverNumber),
		NameAcronym:  sqlutil.FromSqlStringPtr(m.NameAcronym),
		CountryCode:  sqlutil.FromSqlStringPtr(m.CountryCode),
		HeadshotURL:  sqlutil.FromSqlStringPtr(m.HeadshotUrl),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
