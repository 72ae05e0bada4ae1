package interactions

import (
	"context"
	"net/http"

	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/mcdev12/formulated/go/internal/users"
	"github.com/rs/zerolog/log"
)

// InteractionsApp defines what the service layer needs from the application
type InteractionsApp interface {
	CheckLike(ctx context.Context, user *models.User, t Target) (bool, error)
	CreateLike(ctx context.Context, user *models.User, t Target) (*models.Like, error)
	RemoveLike(ctx context.Context, user *models.User, t Target) error
	ListLikes(ctx context.Context, t Target) ([]models.Like, error)
	GetReview(ctx context.Context, user *models.User, t Target) (*models.Review, error)
	CreateReview(ctx context.Context, user *models.User, t Target, in ReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, user *models.User, t Target, in ReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, user *models.User, t Target) error
	ListReviews(ctx context.Context, t Target) ([]models.Review, error)
}

// collections maps each record type to the REST collection it lives under
var collections = map[models.RecordType]string{
	models.RecordTypeTeam:    "/api/teams",
	models.RecordTypeMember:  "/api/members",
	models.RecordTypeRace:    "/api/races",
	models.RecordTypeCircuit: "/api/circuits",
}

// Service exposes likes and reviews as sub-resources of every record type
type Service struct {
	app InteractionsApp
}

func NewService(app InteractionsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers likes and reviews routes for each record type
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	for _, rt := range models.RecordTypes {
		base := collections[rt] + "/{id}"

		mux.HandleFunc("GET "+base+"/likes", s.handleListLikes(rt))
		mux.HandleFunc("GET "+base+"/likes/me", s.handleCheckLike(rt))
		mux.HandleFunc("POST "+base+"/likes", s.handleCreateLike(rt))
		mux.HandleFunc("DELETE "+base+"/likes", s.handleRemoveLike(rt))

		mux.HandleFunc("GET "+base+"/reviews", s.handleListReviews(rt))
		mux.HandleFunc("GET "+base+"/reviews/me", s.handleGetReview(rt))
		mux.HandleFunc("POST "+base+"/reviews", s.handleCreateReview(rt))
		mux.HandleFunc("PUT "+base+"/reviews", s.handleUpdateReview(rt))
		mux.HandleFunc("DELETE "+base+"/reviews", s.handleDeleteReview(rt))
	}
}

func (s *Service) handleListLikes(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		likes, err := s.app.ListLikes(r.Context(), t)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, LikesResponse{Success: true, Likes: nonNil(likes), Count: len(likes)})
	}
}

func (s *Service) handleCheckLike(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		liked, err := s.app.CheckLike(r.Context(), currentUser(r), t)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, LikeStatusResponse{Success: true, Liked: liked})
	}
}

func (s *Service) handleCreateLike(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		like, err := s.app.CreateLike(r.Context(), currentUser(r), t)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusCreated, LikeResponse{Success: true, Like: like, Message: rt.DisplayName() + " liked successfully"})
	}
}

func (s *Service) handleRemoveLike(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		if err := s.app.RemoveLike(r.Context(), currentUser(r), t); err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: rt.DisplayName() + " unliked successfully"})
	}
}

func (s *Service) handleListReviews(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		reviews, err := s.app.ListReviews(r.Context(), t)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, ReviewsResponse{Success: true, Reviews: nonNil(reviews), Count: len(reviews)})
	}
}

func (s *Service) handleGetReview(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		review, err := s.app.GetReview(r.Context(), currentUser(r), t)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, ReviewResponse{Success: true, Review: review})
	}
}

func (s *Service) handleCreateReview(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		var in ReviewInput
		if err := rest.DecodeJSON(r, &in); err != nil {
			rest.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		review, err := s.app.CreateReview(r.Context(), currentUser(r), t, in)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusCreated, ReviewResponse{Success: true, Review: review, Message: rt.DisplayName() + " reviewed successfully"})
	}
}

func (s *Service) handleUpdateReview(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		var in ReviewInput
		if err := rest.DecodeJSON(r, &in); err != nil {
			rest.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		review, err := s.app.UpdateReview(r.Context(), currentUser(r), t, in)
		if err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, ReviewResponse{Success: true, Review: review, Message: rt.DisplayName() + " review updated successfully"})
	}
}

func (s *Service) handleDeleteReview(rt models.RecordType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := target(w, r, rt)
		if !ok {
			return
		}
		if err := s.app.DeleteReview(r.Context(), currentUser(r), t); err != nil {
			writeError(w, err)
			return
		}
		rest.WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: rt.DisplayName() + " review deleted successfully"})
	}
}

func target(w http.ResponseWriter, r *http.Request, rt models.RecordType) (Target, bool) {
	id, err := rest.PathUUID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid "+string(rt)+" ID format")
		return Target{}, false
	}
	return Target{Type: rt, ID: id}, true
}

func currentUser(r *http.Request) *models.User {
	user, _ := users.UserFromContext(r.Context())
	return user
}

func writeError(w http.ResponseWriter, err error) {
	if e, ok := AsError(err); ok {
		rest.WriteError(w, e.HTTPStatus(), e.Message)
		return
	}
	log.Error().Err(err).Msg("interaction request failed")
	rest.WriteError(w, http.StatusInternalServerError, "Internal server error")
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
