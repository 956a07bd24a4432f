package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address defines a persisted delivery address. Each address is owned by
// exactly one user; the order workflow enforces that ownership.
type Address struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label           string             `bson:"label" json:"label"`
	CompleteAddress string             `bson:"completeAddress" json:"completeAddress"`
	Location        GeoPoint           `bson:"location" json:"location"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
}

// AddressPatch carries the mutable address fields; nil fields are left
// untouched.
type AddressPatch struct {
	Label           *string
	CompleteAddress *string
	Location        *GeoPoint
}
