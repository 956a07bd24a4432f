package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the slice of the user document this service reads: identity
// fields for the denormalized order views and the role for admin guards.
// Token issuance lives in a separate service.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Role        string             `bson:"role" json:"role"`
}
