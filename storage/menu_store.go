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

// MenuStore implements services.MenuStore on the menuitems collection.
type MenuStore struct {
	coll *mongo.Collection
}

func (s *MenuStore) MenuItemByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuStore) InsertMenuItem(ctx context.Context, item *models.MenuItem) error {
	_, err := s.coll.InsertOne(ctx, item)
	return err
}

func (s *MenuStore) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *MenuStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MenuStore) ListMenuItems(ctx context.Context, filter services.MenuFilter) ([]models.MenuItem, error) {
	query := bson.M{}
	if !filter.CookProfileID.IsZero() {
		query["cook_profile_id"] = filter.CookProfileID
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Available != nil {
		query["available"] = *filter.Available
	}

	opts := options.Find().SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
