package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user account can hold.
const (
	RoleUser = "user"
	RoleCook = "cook"
)

// User represents a customer or cook account
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password,omitempty" json:"-"`
	Role              string             `bson:"role" json:"role"` // "user" or "cook"
	IsVerified        bool               `bson:"is_verified" json:"is_verified"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage      string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Address           string             `bson:"address,omitempty" json:"address,omitempty"`
	VerificationToken string             `bson:"verification_token,omitempty" json:"-"`
}
