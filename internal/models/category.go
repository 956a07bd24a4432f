package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category defines the persisted category document. DisplayOrder drives the
// public listing sort.
type Category struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryName        string             `bson:"categoryName" json:"categoryName"`
	CategoryDescription string             `bson:"categoryDescription" json:"categoryDescription"`
	DisplayOrder        int                `bson:"displayOrder" json:"displayOrder"`
	CreatedBy           primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy           primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// CategoryPatch carries the mutable category fields; nil fields are left
// untouched.
type CategoryPatch struct {
	CategoryName        *string
	CategoryDescription *string
	DisplayOrder        *int
}
