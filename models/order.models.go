package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Linear happy path; "cancelled" is reachable only from
// "placed" or "confirmed". "delivered" and "cancelled" are terminal.
const (
	StatusPlaced         = "placed"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods and statuses.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentUPI    = "upi"
	PaymentWallet = "wallet"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentWallet:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of a cart line at placement time.
// Name and Price are copied from the catalog so later menu edits never
// alter historical orders.
type OrderItem struct {
	MenuItemID          primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	Name                string             `bson:"name" json:"name"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Price               float64            `bson:"price" json:"price"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
}

// DeliveryAddress is where an order should be delivered. Landmark is the
// only optional field.
type DeliveryAddress struct {
	Street        string `bson:"street" json:"street"`
	City          string `bson:"city" json:"city"`
	State         string `bson:"state" json:"state"`
	PostalCode    string `bson:"postal_code" json:"postal_code"`
	Landmark      string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	ContactNumber string `bson:"contact_number" json:"contact_number"`
}

// Order represents a placed order
type Order struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderNumber           string             `bson:"order_number" json:"order_number"`
	UserID                primitive.ObjectID `bson:"user_id" json:"user_id"`
	CookProfileID         primitive.ObjectID `bson:"cook_profile_id" json:"cook_profile_id"`
	Items                 []OrderItem        `bson:"items" json:"items"`
	TotalAmount           float64            `bson:"total_amount" json:"total_amount"`
	DeliveryAddress       DeliveryAddress    `bson:"delivery_address" json:"delivery_address"`
	PaymentMethod         string             `bson:"payment_method" json:"payment_method"`
	PaymentStatus         string             `bson:"payment_status" json:"payment_status"`
	OrderStatus           string             `bson:"order_status" json:"order_status"`
	EstimatedDeliveryTime time.Time          `bson:"estimated_delivery_time" json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time         `bson:"actual_delivery_time,omitempty" json:"actual_delivery_time,omitempty"`
	CookNotes             string             `bson:"cook_notes,omitempty" json:"cook_notes,omitempty"`
	CustomerNotes         string             `bson:"customer_notes,omitempty" json:"customer_notes,omitempty"`
	CancellationReason    string             `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time          `bson:"updated_at" json:"updated_at"`
}
