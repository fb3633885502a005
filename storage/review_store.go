package storage

import (
	"context"

	"homebites/models"
	"homebites/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxReviewsPerPage = 100

// ReviewStore implements services.ReviewStore on the reviews collection.
type ReviewStore struct {
	coll *mongo.Collection
}

func (s *ReviewStore) HasReview(ctx context.Context, userID, cookID primitive.ObjectID) (bool, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{"user_id": userID, "cook_id": cookID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ReviewStore) InsertReview(ctx context.Context, review *models.Review) error {
	_, err := s.coll.InsertOne(ctx, review)
	// The {user_id, cook_id} unique index backstops the duplicate check.
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrDuplicateReview
	}
	return err
}

func (s *ReviewStore) ListReviews(ctx context.Context, filter services.ReviewFilter) ([]models.Review, error) {
	query := bson.M{}
	if !filter.CookID.IsZero() {
		query["cook_id"] = filter.CookID
	}
	if !filter.UserID.IsZero() {
		query["user_id"] = filter.UserID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(maxReviewsPerPage)

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) RatingsByCook(ctx context.Context, cookID primitive.ObjectID) ([]int, error) {
	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cursor, err := s.coll.Find(ctx, bson.M{"cook_id": cookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Rating int `bson:"rating"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ratings := make([]int, len(docs))
	for i, d := range docs {
		ratings[i] = d.Rating
	}
	return ratings, nil
}
