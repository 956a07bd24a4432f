package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus enumerates the order lifecycle states. Pending is the only
// editable state; accept, reject and cancel all require it.
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusAccepted OrderStatus = "accepted"
	StatusRejected OrderStatus = "rejected"
	StatusCanceled OrderStatus = "canceled"
)

// OrderItem is one line entry within an order. ItemName is a catalog
// snapshot taken when the order is priced, not a live reference.
type OrderItem struct {
	ItemID   primitive.ObjectID `bson:"itemId" json:"itemId"`
	Quantity int                `bson:"quantity" json:"quantity"`
	ItemName string             `bson:"itemName" json:"itemName"`
}

// Order defines the persisted order document. BranchID is resolved by the
// workflow from the delivery address and is never client-supplied.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderItems  []OrderItem        `bson:"orderItems" json:"orderItems"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	AddressID   primitive.ObjectID `bson:"addressId" json:"addressId"`
	BranchID    primitive.ObjectID `bson:"branchId" json:"branchId"`
	Status      OrderStatus        `bson:"status" json:"status"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	DateOrdered time.Time          `bson:"dateOrdered" json:"dateOrdered"`
}

// OrderDetail is the denormalized projection of an order joined with user,
// branch and address display fields.
type OrderDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	OrderItems  []OrderItem        `bson:"orderItems" json:"orderItems"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	UserName    string             `bson:"userName" json:"userName"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	UserAddress string             `bson:"userAddress" json:"userAddress"`
	BranchName  string             `bson:"branchName" json:"branchName"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	Status      OrderStatus        `bson:"status" json:"status"`
	DateOrdered time.Time          `bson:"dateOrdered" json:"dateOrdered"`
}

// UpdateResult reports whether a conditional status update matched a
// document. Matched=false means the status precondition (or the owner
// filter, for cancel) did not hold; that is a normal outcome, not an error.
type UpdateResult struct {
	Matched bool `json:"matched"`
}
