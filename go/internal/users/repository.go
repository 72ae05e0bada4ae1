package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/sqlutil"
	"github.com/mcdev12/formulated/go/internal/users/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	GetUserByUsername(ctx context.Context, username string) (db.User, error)
	SetUserStaff(ctx context.Context, arg db.SetUserStaffParams) (db.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser inserts a user. Unique violations are reported as
// ErrEmailTaken or ErrUsernameTaken.
func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		IsStaff:      params.IsStaff,
	})
	if sqlutil.IsUniqueViolation(err) {
		if sqlutil.ConstraintName(err) == "users_username_key" {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return dbUserToModel(user), nil
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", sqlutil.NotFound(err))
	}
	return dbUserToModel(user), nil
}

// GetUserByEmail matches case-insensitively
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", sqlutil.NotFound(err))
	}
	return dbUserToModel(user), nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.queries.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", sqlutil.NotFound(err))
	}
	return dbUserToModel(user), nil
}

func (r *Repository) SetStaff(ctx context.Context, id uuid.UUID, staff bool) (*models.User, error) {
	user, err := r.queries.SetUserStaff(ctx, db.SetUserStaffParams{ID: id, IsStaff: staff})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", sqlutil.NotFound(err))
	}
	return dbUserToModel(user), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// dbUserToModel converts a database user to domain model
func dbUserToModel(u db.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		CreatedAt:    u.CreatedAt,
	}
}
