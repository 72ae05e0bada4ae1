package interactions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/rs/zerolog/log"
)

// InteractionsRepository defines what the app layer needs from the repository
type InteractionsRepository interface {
	LikeExists(ctx context.Context, userID uuid.UUID, t Target) (bool, error)
	CreateLike(ctx context.Context, userID uuid.UUID, t Target) (*models.Like, error)
	DeleteLike(ctx context.Context, userID uuid.UUID, t Target) (bool, error)
	ListLikes(ctx context.Context, t Target) ([]models.Like, error)
	GetReview(ctx context.Context, userID uuid.UUID, t Target) (*models.Review, error)
	CreateReview(ctx context.Context, userID uuid.UUID, t Target, in ReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, id uuid.UUID, in ReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, t Target) (bool, error)
	ListReviews(ctx context.Context, t Target) ([]models.Review, error)
}

// TargetResolver checks a target record exists
type TargetResolver interface {
	Resolve(ctx context.Context, t Target) error
}

// App implements likes and reviews over any record type. It only ever
// writes the likes and reviews tables.
type App struct {
	repo     InteractionsRepository
	resolver TargetResolver
}

func NewApp(repo InteractionsRepository, resolver TargetResolver) *App {
	return &App{repo: repo, resolver: resolver}
}

// CheckLike reports whether user has liked the target
func (a *App) CheckLike(ctx context.Context, user *models.User, t Target) (bool, error) {
	if user == nil {
		return false, errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return false, err
	}
	return a.repo.LikeExists(ctx, user.ID, t)
}

func (a *App) CreateLike(ctx context.Context, user *models.User, t Target) (*models.Like, error) {
	if user == nil {
		return nil, errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}

	exists, err := a.repo.LikeExists(ctx, user.ID, t)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyLiked(t)
	}

	like, err := a.repo.CreateLike(ctx, user.ID, t)
	if errors.Is(err, ErrDuplicate) {
		return nil, alreadyLiked(t)
	}
	if err != nil {
		return nil, err
	}

	like.Username = user.Username
	log.Info().Str("user_id", user.ID.String()).Str("record_type", string(t.Type)).Str("record_id", t.ID.String()).Msg("like created")
	return like, nil
}

func (a *App) RemoveLike(ctx context.Context, user *models.User, t Target) error {
	if user == nil {
		return errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return err
	}

	removed, err := a.repo.DeleteLike(ctx, user.ID, t)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Like")
	}
	return nil
}

// ListLikes returns every like on the target, newest first
func (a *App) ListLikes(ctx context.Context, t Target) ([]models.Like, error) {
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}
	return a.repo.ListLikes(ctx, t)
}

// GetReview returns user's review of the target
func (a *App) GetReview(ctx context.Context, user *models.User, t Target) (*models.Review, error) {
	if user == nil {
		return nil, errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}

	review, err := a.repo.GetReview(ctx, user.ID, t)
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound("Review")
	}
	return review, err
}

func (a *App) CreateReview(ctx context.Context, user *models.User, t Target, in ReviewInput) (*models.Review, error) {
	if user == nil {
		return nil, errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}

	_, err := a.repo.GetReview(ctx, user.ID, t)
	if err == nil {
		return nil, alreadyReviewed(t)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	in, err = validateReview(in)
	if err != nil {
		return nil, err
	}

	review, err := a.repo.CreateReview(ctx, user.ID, t, in)
	if errors.Is(err, ErrDuplicate) {
		return nil, alreadyReviewed(t)
	}
	if err != nil {
		return nil, err
	}

	review.Username = user.Username
	log.Info().Str("user_id", user.ID.String()).Str("record_type", string(t.Type)).Int("rating", review.Rating).Msg("review created")
	return review, nil
}

// UpdateReview replaces the rating and description of an existing review
func (a *App) UpdateReview(ctx context.Context, user *models.User, t Target, in ReviewInput) (*models.Review, error) {
	if user == nil {
		return nil, errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}

	existing, err := a.repo.GetReview(ctx, user.ID, t)
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound("Review")
	}
	if err != nil {
		return nil, err
	}

	in, err = validateReview(in)
	if err != nil {
		return nil, err
	}

	review, err := a.repo.UpdateReview(ctx, existing.ID, in)
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound("Review")
	}
	if err != nil {
		return nil, err
	}

	review.Username = user.Username
	return review, nil
}

func (a *App) DeleteReview(ctx context.Context, user *models.User, t Target) error {
	if user == nil {
		return errAuthRequired
	}
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return err
	}

	removed, err := a.repo.DeleteReview(ctx, user.ID, t)
	if err != nil {
		return err
	}
	if !removed {
		return notFound("Review")
	}
	return nil
}

// ListReviews returns every review on the target, newest first
func (a *App) ListReviews(ctx context.Context, t Target) ([]models.Review, error) {
	if err := a.resolver.Resolve(ctx, t); err != nil {
		return nil, err
	}
	return a.repo.ListReviews(ctx, t)
}

func alreadyLiked(t Target) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("You have already liked this %s", t.Type)}
}

func alreadyReviewed(t Target) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("You have already reviewed this %s", t.Type)}
}

// validateReview trims the description and checks the input, reporting the
// first failing field.
func validateReview(in ReviewInput) (ReviewInput, error) {
	in.Description = strings.TrimSpace(in.Description)

	err := rest.Validate(in)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Rating":
			return in, invalid("Rating must be between 1 and 5")
		default:
			return in, invalid("Description is required")
		}
	}
	if err != nil {
		return in, err
	}
	return in, nil
}
