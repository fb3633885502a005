package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"homebites/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	minCommentLen = 10
	maxCommentLen = 1000
)

// ReviewFilter narrows ListReviews. Zero-value fields are ignored.
type ReviewFilter struct {
	CookID primitive.ObjectID
	UserID primitive.ObjectID
}

// ReviewStore persists reviews. InsertReview returns ErrDuplicateReview when
// the {user, cook} unique index rejects the write.
type ReviewStore interface {
	HasReview(ctx context.Context, userID, cookID primitive.ObjectID) (bool, error)
	InsertReview(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context, filter ReviewFilter) ([]models.Review, error)
	RatingsByCook(ctx context.Context, cookID primitive.ObjectID) ([]int, error)
}

// CookRatingStore is the slice of the cook store the review flow writes to.
type CookRatingStore interface {
	CookByID(ctx context.Context, id primitive.ObjectID) (*models.CookProfile, error)
	SetCookRating(ctx context.Context, id primitive.ObjectID, rating float64) error
}

// ReviewService enforces one review per user per cook and keeps the cook's
// displayed rating equal to the rounded mean of all its reviews.
type ReviewService struct {
	reviews ReviewStore
	cooks   CookRatingStore
}

func NewReviewService(reviews ReviewStore, cooks CookRatingStore) *ReviewService {
	return &ReviewService{reviews: reviews, cooks: cooks}
}

// ReviewInput is the payload for creating a review.
type ReviewInput struct {
	UserID   primitive.ObjectID
	UserName string
	CookID   primitive.ObjectID
	Rating   int
	Comment  string
}

func (in *ReviewInput) validate() error {
	if in.UserID.IsZero() || in.CookID.IsZero() {
		return Validationf("user ID and cook ID are required")
	}
	if strings.TrimSpace(in.UserName) == "" {
		return Validationf("user name is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return Validationf("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(in.Comment)
	if len(comment) < minCommentLen {
		return Validationf("comment must be at least %d characters", minCommentLen)
	}
	if len(comment) > maxCommentLen {
		return Validationf("comment cannot be more than %d characters", maxCommentLen)
	}
	return nil
}

// Create inserts a review and recomputes the cook's rating as the arithmetic
// mean over all reviews, rounded to one decimal place. The recompute is a
// full scan per insert, which is fine at this scale.
func (s *ReviewService) Create(ctx context.Context, in ReviewInput) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.cooks.CookByID(ctx, in.CookID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCookNotFound
		}
		return nil, err
	}

	exists, err := s.reviews.HasReview(ctx, in.UserID, in.CookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	now := time.Now()
	review := &models.Review{
		ID:        primitive.NewObjectID(),
		UserID:    in.UserID,
		UserName:  strings.TrimSpace(in.UserName),
		CookID:    in.CookID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviews.InsertReview(ctx, review); err != nil {
		return nil, err
	}

	ratings, err := s.reviews.RatingsByCook(ctx, in.CookID)
	if err != nil {
		return nil, err
	}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		mean := float64(sum) / float64(len(ratings))
		if err := s.cooks.SetCookRating(ctx, in.CookID, math.Round(mean*10)/10); err != nil {
			return nil, err
		}
	}
	return review, nil
}

// List returns reviews matching the filter, newest first.
func (s *ReviewService) List(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	return s.reviews.ListReviews(ctx, filter)
}
