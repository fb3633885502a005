package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu item categories accepted by the catalog.
var MenuCategories = []string{"appetizer", "main-course", "dessert", "beverage", "snack", "combo"}

// MenuItem represents a dish offered by a cook
type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CookProfileID primitive.ObjectID `bson:"cook_profile_id" json:"cook_profile_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category" json:"category"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Ingredients   []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Allergens     []string           `bson:"allergens,omitempty" json:"allergens,omitempty"`
	DietaryInfo   []string           `bson:"dietary_info,omitempty" json:"dietary_info,omitempty"`
	CookingTime   string             `bson:"cooking_time" json:"cooking_time"`
	ServingSize   string             `bson:"serving_size" json:"serving_size"`
	Available     bool               `bson:"available" json:"available"`
	Featured      bool               `bson:"featured" json:"featured"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ValidCategory reports whether c is a known menu category.
func ValidCategory(c string) bool {
	for _, known := range MenuCategories {
		if c == known {
			return true
		}
	}
	return false
}
