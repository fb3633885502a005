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

// OrderStore implements services.OrderStore. It holds the client as well as
// the collections because checkout spans orders and carts in one
// transaction.
type OrderStore struct {
	client *mongo.Client
	orders *mongo.Collection
	carts  *mongo.Collection
}

// PlaceOrder inserts the order and deletes the cart inside a single session
// transaction, so a failed cart delete can never leave a placed order behind.
// Requires a replica-set deployment, which is standard for Atlas.
func (s *OrderStore) PlaceOrder(ctx context.Context, order *models.Order, cartID primitive.ObjectID) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.orders.InsertOne(sc, order); err != nil {
			return nil, err
		}
		if _, err := s.carts.DeleteOne(sc, bson.M{"_id": cartID}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (s *OrderStore) OrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *OrderStore) OrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	return s.findOne(ctx, bson.M{"order_number": number})
}

func (s *OrderStore) findOne(ctx context.Context, filter bson.M) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, filter).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) UpdateOrder(ctx context.Context, order *models.Order) error {
	result, err := s.orders.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *OrderStore) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.orders.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *OrderStore) ListOrders(ctx context.Context, filter services.OrderFilter) ([]models.Order, int64, error) {
	query := bson.M{}
	if !filter.UserID.IsZero() {
		query["user_id"] = filter.UserID
	}
	if !filter.CookProfileID.IsZero() {
		query["cook_profile_id"] = filter.CookProfileID
	}
	if filter.Status != "" {
		query["order_status"] = filter.Status
	}

	total, err := s.orders.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := s.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
