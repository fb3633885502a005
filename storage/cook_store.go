package storage

import (
	"context"
	"errors"

	"homebites/models"
	"homebites/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CookStore implements services.CookStore on the cookprofiles collection.
type CookStore struct {
	coll *mongo.Collection
}

func (s *CookStore) findOne(ctx context.Context, filter bson.M) (*models.CookProfile, error) {
	var cook models.CookProfile
	err := s.coll.FindOne(ctx, filter).Decode(&cook)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cook, nil
}

func (s *CookStore) CookByID(ctx context.Context, id primitive.ObjectID) (*models.CookProfile, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *CookStore) CookByUser(ctx context.Context, userID primitive.ObjectID) (*models.CookProfile, error) {
	return s.findOne(ctx, bson.M{"user_id": userID})
}

func (s *CookStore) InsertCook(ctx context.Context, cook *models.CookProfile) error {
	_, err := s.coll.InsertOne(ctx, cook)
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrCookProfileHeld
	}
	return err
}

func (s *CookStore) UpdateCook(ctx context.Context, cook *models.CookProfile) error {
	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": cook.ID}, cook)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *CookStore) SetCookRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"rating": rating}})
	return err
}

func (s *CookStore) ListCooks(ctx context.Context, featuredOnly bool) ([]models.CookProfile, error) {
	query := bson.M{}
	if featuredOnly {
		query["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "rating", Value: -1}})
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cooks []models.CookProfile
	if err := cursor.All(ctx, &cooks); err != nil {
		return nil, err
	}
	return cooks, nil
}
