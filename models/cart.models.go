package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents a line in the cart. Price is a snapshot of the menu
// item's price at the time the line was added.
type CartItem struct {
	MenuItemID          primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Price               float64            `bson:"price" json:"price"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
}

// Cart represents a user's active cart. A user has at most one cart and all
// items in it belong to a single cook.
type Cart struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	CookProfileID primitive.ObjectID `bson:"cook_profile_id" json:"cook_profile_id"`
	Items         []CartItem         `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Total sums price x quantity over all items.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
