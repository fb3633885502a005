// Package storage provides the MongoDB implementations of the service
// store interfaces.
package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to MongoDB")
	return client
}

// DB bundles the collections and store implementations for one database.
type DB struct {
	Users   *UserStore
	Cooks   *CookStore
	Menu    *MenuStore
	Carts   *CartStore
	Orders  *OrderStore
	Reviews *ReviewStore

	db *mongo.Database
}

// New wires the stores over the named database.
func New(client *mongo.Client, name string) *DB {
	db := client.Database(name)
	return &DB{
		Users:   &UserStore{coll: db.Collection("users")},
		Cooks:   &CookStore{coll: db.Collection("cookprofiles")},
		Menu:    &MenuStore{coll: db.Collection("menuitems")},
		Carts:   &CartStore{coll: db.Collection("carts")},
		Orders:  &OrderStore{client: client, orders: db.Collection("orders"), carts: db.Collection("carts")},
		Reviews: &ReviewStore{coll: db.Collection("reviews")},
		db:      db,
	}
}

// EnsureIndexes creates the uniqueness and lookup indexes the domain
// invariants lean on: one cart per user, unique order numbers, one review
// per user per cook, unique emails.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"cookprofiles": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		"menuitems": {
			{Keys: bson.D{{Key: "cook_profile_id", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		"carts": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		"orders": {
			{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "cook_profile_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"reviews": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "cook_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "cook_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
