package interactions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	likes   []*models.Like
	reviews []*models.Review
	// raceOnInsert simulates a concurrent insert winning the unique constraint
	raceOnInsert bool
	now          time.Time
}

func (f *fakeRepo) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeRepo) LikeExists(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	for _, l := range f.likes {
		if l.UserID == userID && l.RecordType == t.Type && l.RecordID == t.ID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateLike(ctx context.Context, userID uuid.UUID, t Target) (*models.Like, error) {
	if f.raceOnInsert {
		return nil, ErrDuplicate
	}
	l := &models.Like{ID: uuid.New(), UserID: userID, RecordType: t.Type, RecordID: t.ID, CreatedAt: f.tick()}
	f.likes = append(f.likes, l)
	return l, nil
}

func (f *fakeRepo) DeleteLike(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	for i, l := range f.likes {
		if l.UserID == userID && l.RecordType == t.Type && l.RecordID == t.ID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListLikes(ctx context.Context, t Target) ([]models.Like, error) {
	var out []models.Like
	for i := len(f.likes) - 1; i >= 0; i-- {
		if l := f.likes[i]; l.RecordType == t.Type && l.RecordID == t.ID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetReview(ctx context.Context, userID uuid.UUID, t Target) (*models.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.RecordType == t.Type && r.RecordID == t.ID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) CreateReview(ctx context.Context, userID uuid.UUID, t Target, in ReviewInput) (*models.Review, error) {
	if f.raceOnInsert {
		return nil, ErrDuplicate
	}
	r := &models.Review{ID: uuid.New(), UserID: userID, RecordType: t.Type, RecordID: t.ID, Rating: in.Rating, Description: in.Description, CreatedAt: f.tick()}
	f.reviews = append(f.reviews, r)
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) UpdateReview(ctx context.Context, id uuid.UUID, in ReviewInput) (*models.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			r.Rating, r.Description, r.UpdatedAt = in.Rating, in.Description, f.tick()
			copied := *r
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) DeleteReview(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	for i, r := range f.reviews {
		if r.UserID == userID && r.RecordType == t.Type && r.RecordID == t.ID {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListReviews(ctx context.Context, t Target) ([]models.Review, error) {
	var out []models.Review
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if r := f.reviews[i]; r.RecordType == t.Type && r.RecordID == t.ID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// records backs every getter the resolver needs
type records struct {
	ids map[uuid.UUID]models.RecordType
}

func (r *records) lookup(id uuid.UUID, rt models.RecordType) error {
	if r.ids[id] == rt {
		return nil
	}
	return models.ErrNotFound
}

func (r *records) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return &models.Team{ID: id}, r.lookup(id, models.RecordTypeTeam)
}

func (r *records) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return &models.Member{ID: id}, r.lookup(id, models.RecordTypeMember)
}

func (r *records) GetRace(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	return &models.Race{ID: id}, r.lookup(id, models.RecordTypeRace)
}

func (r *records) GetCircuit(ctx context.Context, id uuid.UUID) (*models.Circuit, error) {
	return &models.Circuit{ID: id}, r.lookup(id, models.RecordTypeCircuit)
}

var (
	teamID    = uuid.New()
	memberID  = uuid.New()
	raceID    = uuid.New()
	circuitID = uuid.New()
)

func newTestApp() (*App, *fakeRepo) {
	repo := &fakeRepo{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	recs := &records{ids: map[uuid.UUID]models.RecordType{
		teamID:    models.RecordTypeTeam,
		memberID:  models.RecordTypeMember,
		raceID:    models.RecordTypeRace,
		circuitID: models.RecordTypeCircuit,
	}}
	return NewApp(repo, NewResolver(recs, recs, recs)), repo
}

func newUser(name string) *models.User {
	return &models.User{ID: uuid.New(), Username: name}
}

func requireKind(t *testing.T, err error, kind ErrorKind, msg string) {
	t.Helper()
	e, ok := AsError(err)
	require.True(t, ok, "expected *Error, got %v", err)
	assert.Equal(t, kind, e.Kind)
	assert.Equal(t, msg, e.Message)
}

func TestLikeLifecycle(t *testing.T) {
	app, _ := newTestApp()
	ctx := context.Background()
	user := newUser("tifosi")
	team := Target{Type: models.RecordTypeTeam, ID: teamID}

	liked, err := app.CheckLike(ctx, user, team)
	require.NoError(t, err)
	assert.False(t, liked)

	like, err := app.CreateLike(ctx, user, team)
	require.NoError(t, err)
	assert.Equal(t, "tifosi", like.Username)

	liked, err = app.CheckLike(ctx, user, team)
	require.NoError(t, err)
	assert.True(t, liked)

	_, err = app.CreateLike(ctx, user, team)
	requireKind(t, err, KindDuplicate, "You have already liked this team")

	require.NoError(t, app.RemoveLike(ctx, user, team))
	err = app.RemoveLike(ctx, user, team)
	requireKind(t, err, KindNotFound, "Like not found")
}

func TestCreateLikeConcurrentDuplicate(t *testing.T) {
	app, repo := newTestApp()
	repo.raceOnInsert = true

	_, err := app.CreateLike(context.Background(), newUser("a"), Target{Type: models.RecordTypeRace, ID: raceID})
	requireKind(t, err, KindDuplicate, "You have already liked this race")
}

func TestListLikesNewestFirstWithoutAuth(t *testing.T) {
	app, _ := newTestApp()
	ctx := context.Background()
	circuit := Target{Type: models.RecordTypeCircuit, ID: circuitID}

	_, err := app.CreateLike(ctx, newUser("first"), circuit)
	require.NoError(t, err)
	_, err = app.CreateLike(ctx, newUser("second"), circuit)
	require.NoError(t, err)

	likes, err := app.ListLikes(ctx, circuit)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.True(t, likes[0].CreatedAt.After(likes[1].CreatedAt))
}

func TestOperationsRequireAuthentication(t *testing.T) {
	app, _ := newTestApp()
	ctx := context.Background()
	team := Target{Type: models.RecordTypeTeam, ID: teamID}
	in := ReviewInput{Rating: 5, Description: "Great"}

	errs := []error{}
	_, err := app.CheckLike(ctx, nil, team)
	errs = append(errs, err)
	_, err = app.CreateLike(ctx, nil, team)
	errs = append(errs, err)
	errs = append(errs, app.RemoveLike(ctx, nil, team))
	_, err = app.GetReview(ctx, nil, team)
	errs = append(errs, err)
	_, err = app.CreateReview(ctx, nil, team, in)
	errs = append(errs, err)
	_, err = app.UpdateReview(ctx, nil, team, in)
	errs = append(errs, err)
	errs = append(errs, app.DeleteReview(ctx, nil, team))

	for _, err := range errs {
		requireKind(t, err, KindUnauthenticated, "Authentication required")
	}
}

func TestUnknownTargetIsNotFound(t *testing.T) {
	app, _ := newTestApp()
	ctx := context.Background()

	_, err := app.CreateLike(ctx, newUser("a"), Target{Type: models.RecordTypeTeam, ID: uuid.New()})
	requireKind(t, err, KindNotFound, "Team not found")

	_, err = app.ListReviews(ctx, Target{Type: models.RecordTypeMember, ID: teamID})
	requireKind(t, err, KindNotFound, "Member not found")

	_, err = app.ListLikes(ctx, Target{Type: "garage", ID: teamID})
	requireKind(t, err, KindInvalid, `Unknown record type "garage"`)
}

func TestReviewLifecycle(t *testing.T) {
	app, repo := newTestApp()
	ctx := context.Background()
	user := newUser("pitwall")
	member := Target{Type: models.RecordTypeMember, ID: memberID}

	_, err := app.GetReview(ctx, user, member)
	requireKind(t, err, KindNotFound, "Review not found")

	review, err := app.CreateReview(ctx, user, member, ReviewInput{Rating: 4, Description: "  Consistent driver  "})
	require.NoError(t, err)
	assert.Equal(t, "Consistent driver", review.Description)
	assert.Equal(t, "pitwall", review.Username)

	_, err = app.CreateReview(ctx, user, member, ReviewInput{Rating: 5, Description: "Again"})
	requireKind(t, err, KindDuplicate, "You have already reviewed this member")

	updated, err := app.UpdateReview(ctx, user, member, ReviewInput{Rating: 2, Description: "Tough season"})
	require.NoError(t, err)
	assert.Equal(t, review.ID, updated.ID)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Tough season", updated.Description)

	got, err := app.GetReview(ctx, user, member)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)

	require.NoError(t, app.DeleteReview(ctx, user, member))
	assert.Empty(t, repo.reviews)
	requireKind(t, app.DeleteReview(ctx, user, member), KindNotFound, "Review not found")

	_, err = app.UpdateReview(ctx, user, member, ReviewInput{Rating: 3, Description: "x"})
	requireKind(t, err, KindNotFound, "Review not found")
}

func TestReviewValidation(t *testing.T) {
	tests := []struct {
		name string
		in   ReviewInput
		want string
	}{
		{"rating too low", ReviewInput{Rating: 0, Description: "ok"}, "Rating must be between 1 and 5"},
		{"rating too high", ReviewInput{Rating: 6, Description: "ok"}, "Rating must be between 1 and 5"},
		{"blank description", ReviewInput{Rating: 3, Description: "   "}, "Description is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo := newTestApp()
			_, err := app.CreateReview(context.Background(), newUser("u"), Target{Type: models.RecordTypeRace, ID: raceID}, tt.in)
			requireKind(t, err, KindInvalid, tt.want)
			assert.Empty(t, repo.reviews, "invalid reviews are never persisted")
		})
	}
}

func TestErrorHTTPStatus(t *testing.T) {
	assert.Equal(t, 401, errAuthRequired.HTTPStatus())
	assert.Equal(t, 404, notFound("Like").HTTPStatus())
	assert.Equal(t, 400, invalid("bad").HTTPStatus())
	assert.Equal(t, 400, (&Error{Kind: KindDuplicate}).HTTPStatus())
}
