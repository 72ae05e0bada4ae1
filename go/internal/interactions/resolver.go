package interactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
)

type TeamGetter interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

type MemberGetter interface {
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

type RaceGetter interface {
	GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error)
	GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error)
}

// Resolver checks that the record behind a Target exists
type Resolver struct {
	teams   TeamGetter
	members MemberGetter
	races   RaceGetter
}

func NewResolver(teams TeamGetter, members MemberGetter, races RaceGetter) *Resolver {
	return &Resolver{teams: teams, members: members, races: races}
}

// Resolve returns a not-found *Error naming the record type when the
// record is missing.
func (r *Resolver) Resolve(ctx context.Context, t Target) error {
	var err error
	switch t.Type {
	case models.RecordTypeTeam:
		_, err = r.teams.GetTeam(ctx, t.ID)
	case models.RecordTypeMember:
		_, err = r.members.GetMember(ctx, t.ID)
	case models.RecordTypeRace:
		_, err = r.races.GetRace(ctx, t.ID)
	case models.RecordTypeCircuit:
		_, err = r.races.GetCircuit(ctx, t.ID)
	default:
		return invalid(fmt.Sprintf("Unknown record type %q", t.Type))
	}

	if errors.Is(err, models.ErrNotFound) {
		return notFound(t.Type.DisplayName())
	}
	if err != nil {
		return fmt.Errorf("resolve %s %s: %w", t.Type, t.ID, err)
	}
	return nil
}
