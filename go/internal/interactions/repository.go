package interactions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/interactions/db"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
)

// Repository implements like and review data access
type Repository struct {
	queries db.Querier
}

// NewRepository creates a new interactions repository
func NewRepository(querier db.Querier) *Repository {
	return &Repository{queries: querier}
}

func (r *Repository) LikeExists(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	exists, err := r.queries.LikeExists(ctx, db.LikeExistsParams{UserID: userID, RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// CreateLike inserts a like. A concurrent duplicate surfaces as
// ErrDuplicate via the unique constraint.
func (r *Repository) CreateLike(ctx context.Context, userID uuid.UUID, t Target) (*models.Like, error) {
	like, err := r.queries.CreateLike(ctx, db.CreateLikeParams{UserID: userID, RecordType: string(t.Type), RecordID: t.ID})
	if sqlutil.IsUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	return &models.Like{
		ID:         like.ID,
		UserID:     like.UserID,
		RecordType: models.RecordType(like.RecordType),
		RecordID:   like.RecordID,
		CreatedAt:  like.CreatedAt,
	}, nil
}

// DeleteLike reports whether a like was removed
func (r *Repository) DeleteLike(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	n, err := r.queries.DeleteLike(ctx, db.DeleteLikeParams{UserID: userID, RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) ListLikes(ctx context.Context, t Target) ([]models.Like, error) {
	rows, err := r.queries.ListLikes(ctx, db.ListLikesParams{RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	likes := make([]models.Like, len(rows))
	for i, row := range rows {
		likes[i] = models.Like{
			ID:         row.ID,
			UserID:     row.UserID,
			Username:   row.Username,
			RecordType: models.RecordType(row.RecordType),
			RecordID:   row.RecordID,
			CreatedAt:  row.CreatedAt,
		}
	}
	return likes, nil
}

func (r *Repository) GetReview(ctx context.Context, userID uuid.UUID, t Target) (*models.Review, error) {
	row, err := r.queries.GetReview(ctx, db.GetReviewParams{UserID: userID, RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", sqlutil.NotFound(err))
	}
	return &models.Review{
		ID:          row.ID,
		UserID:      row.UserID,
		Username:    row.Username,
		Rating:      int(row.Rating),
		Description: row.Description,
		RecordType:  models.RecordType(row.RecordType),
		RecordID:    row.RecordID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func (r *Repository) CreateReview(ctx context.Context, userID uuid.UUID, t Target, in ReviewInput) (*models.Review, error) {
	review, err := r.queries.CreateReview(ctx, db.CreateReviewParams{
		UserID:      userID,
		Rating:      int32(in.Rating),
		Description: in.Description,
		RecordType:  string(t.Type),
		RecordID:    t.ID,
	})
	if sqlutil.IsUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return dbReviewToModel(review), nil
}

func (r *Repository) UpdateReview(ctx context.Context, id uuid.UUID, in ReviewInput) (*models.Review, error) {
	review, err := r.queries.UpdateReview(ctx, db.UpdateReviewParams{
		ID:          id,
		Rating:      int32(in.Rating),
		Description: in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", sqlutil.NotFound(err))
	}
	return dbReviewToModel(review), nil
}

func (r *Repository) DeleteReview(ctx context.Context, userID uuid.UUID, t Target) (bool, error) {
	n, err := r.queries.DeleteReview(ctx, db.DeleteReviewParams{UserID: userID, RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return false, fmt.Errorf("failed to delete review: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) ListReviews(ctx context.Context, t Target) ([]models.Review, error) {
	rows, err := r.queries.ListReviews(ctx, db.ListReviewsParams{RecordType: string(t.Type), RecordID: t.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]models.Review, len(rows))
	for i, row := range rows {
		reviews[i] = models.Review{
			ID:          row.ID,
			UserID:      row.UserID,
			Username:    row.Username,
			Rating:      int(row.Rating),
			Description: row.Description,
			RecordType:  models.RecordType(row.RecordType),
			RecordID:    row.RecordID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return reviews, nil
}

func dbReviewToModel(r db.Review) *models.Review {
	return &models.Review{
		ID:          r.ID,
		UserID:      r.UserID,
		Rating:      int(r.Rating),
		Description: r.Description,
		RecordType:  models.RecordType(r.RecordType),
		RecordID:    r.RecordID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
