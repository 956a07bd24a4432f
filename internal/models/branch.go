package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Branch defines the persisted restaurant branch document. Branches are
// selected for orders via a nearest-sphere query over Location, filtered on
// IsOpen.
type Branch struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BranchName  string             `bson:"branchName" json:"branchName"`
	Location    GeoPoint           `bson:"location" json:"location"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Services    []string           `bson:"services" json:"services"`
	IsOpen      bool               `bson:"isOpen" json:"isOpen"`
	CreatedBy   primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy   primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// BranchPatch carries the mutable branch fields; nil fields are left
// untouched.
type BranchPatch struct {
	BranchName  *string
	Location    *GeoPoint
	PhoneNumber *string
	Services    []string
	IsOpen      *bool
}
