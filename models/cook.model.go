package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CookProfile is the public storefront of a home cook
type CookProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	BusinessName string             `bson:"business_name" json:"business_name"`
	Description  string             `bson:"description" json:"description"`
	Cuisine      []string           `bson:"cuisine" json:"cuisine"`
	Specialties  []string           `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Location     string             `bson:"location" json:"location"`
	PriceRange   string             `bson:"price_range" json:"price_range"` // "$".."$$$$"
	DeliveryTime string             `bson:"delivery_time" json:"delivery_time"`
	Rating       float64            `bson:"rating" json:"rating"` // mean of review ratings, one decimal
	TotalOrders  int                `bson:"total_orders" json:"total_orders"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
