package interactions

import (
	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
)

// Target identifies the record a like or review points at
type Target struct {
	Type models.RecordType
	ID   uuid.UUID
}

// ReviewInput is the body of review create and update requests
type ReviewInput struct {
	Rating      int    `json:"rating" validate:"min=1,max=5"`
	Description string `json:"description" validate:"required"`
}

type LikesResponse struct {
	Success bool          `json:"success"`
	Likes   []models.Like `json:"likes"`
	Count   int           `json:"count"`
}

type LikeStatusResponse struct {
	Success bool `json:"success"`
	Liked   bool `json:"liked"`
}

type LikeResponse struct {
	Success bool         `json:"success"`
	Like    *models.Like `json:"like"`
	Message string       `json:"message"`
}

type ReviewsResponse struct {
	Success bool            `json:"success"`
	Reviews []models.Review `json:"reviews"`
	Count   int             `json:"count"`
}

type ReviewResponse struct {
	Success bool           `json:"success"`
	Review  *models.Review `json:"review"`
	Message string         `json:"message,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
