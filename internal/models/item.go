package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item defines the persisted catalog item document.
type Item struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemName        string             `bson:"itemName" json:"itemName"`
	ItemDescription string             `bson:"itemDescription" json:"itemDescription"`
	CategoryID      primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	Ingredients     string             `bson:"ingredients" json:"ingredients"`
	Price           float64            `bson:"price" json:"price"`
	CreatedBy       primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy       primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// ItemDetail joins an item with its category display fields.
type ItemDetail struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	ItemName            string             `bson:"itemName" json:"itemName"`
	ItemDescription     string             `bson:"itemDescription" json:"itemDescription"`
	Ingredients         string             `bson:"ingredients" json:"ingredients"`
	Price               float64            `bson:"price" json:"price"`
	CategoryID          primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	CategoryName        string             `bson:"categoryName" json:"categoryName"`
	CategoryDescription string             `bson:"categoryDescription" json:"categoryDescription"`
}

// ItemSummary is the per-item shape inside a grouped catalog listing.
type ItemSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Ingredients string             `bson:"ingredients" json:"ingredients"`
	Price       float64            `bson:"price" json:"price"`
}

// CategoryItems groups catalog items under their category.
type CategoryItems struct {
	Category Category      `bson:"category" json:"category"`
	Items    []ItemSummary `bson:"items" json:"items"`
}

// ItemListFilter narrows the grouped catalog listing. Nil fields match
// everything; SearchText runs against the itemName/ingredients text index.
type ItemListFilter struct {
	CategoryID *primitive.ObjectID
	MaxPrice   *float64
	SearchText string
}

// ItemPatch carries the mutable item fields; nil fields are left untouched.
type ItemPatch struct {
	ItemName        *string
	ItemDescription *string
	CategoryID      *primitive.ObjectID
	Ingredients     *string
	Price           *float64
}
