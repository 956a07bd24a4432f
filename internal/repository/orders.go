package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-backend/internal/models"
)

// OrderRepository persists orders and serves the denormalized order views.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// Aggregation stages shared by the detail views.
var (
	userLookup = bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "users",
		"localField":   "userId",
		"foreignField": "_id",
		"as":           "user",
	}}}
	userUnwind = bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       "$user",
		"preserveNullAndEmptyArrays": true,
	}}}
	branchLookup = bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "branches",
		"localField":   "branchId",
		"foreignField": "_id",
		"as":           "branch",
	}}}
	branchUnwind = bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       "$branch",
		"preserveNullAndEmptyArrays": true,
	}}}
	addressLookup = bson.D{{Key: "$lookup", Value: bson.M{
		"from":         "addresses",
		"localField":   "addressId",
		"foreignField": "_id",
		"as":           "address",
	}}}
	addressUnwind = bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       "$address",
		"preserveNullAndEmptyArrays": true,
	}}}
	detailProject = bson.D{{Key: "$project", Value: bson.M{
		"orderItems": 1,
		"userId":     1,
		"userName": bson.M{"$concat": bson.A{
			bson.M{"$ifNull": bson.A{"$user.firstName", ""}},
			" ",
			bson.M{"$ifNull": bson.A{"$user.lastName", ""}},
		}},
		"userEmail":   "$user.email",
		"userAddress": "$address.completeAddress",
		"branchName":  "$branch.branchName",
		"totalPrice":  1,
		"status":      1,
		"dateOrdered": 1,
	}}}

	// List queries sort newest first, with _id as tiebreaker so pagination
	// stays deterministic across requests.
	orderSort = bson.D{{Key: "$sort", Value: bson.D{
		{Key: "dateOrdered", Value: -1},
		{Key: "_id", Value: -1},
	}}}
)

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID returns (nil, nil) when no order matches.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Replace overwrites the stored order document in full. The workflow builds
// a validated candidate first, so this is the single write of an update.
func (r *OrderRepository) Replace(ctx context.Context, order *models.Order) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	return err
}

// SetStatus moves an order from one status to another in a single
// conditional update. A non-matching current status yields Matched=false.
func (r *OrderRepository) SetStatus(ctx context.Context, orderID primitive.ObjectID, from, to models.OrderStatus) (models.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": orderID, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{Matched: res.MatchedCount > 0}, nil
}

// CancelForUser cancels a pending order owned by userID. The owner filter is
// part of the update predicate, giving check-and-set semantics without a
// prior read.
func (r *OrderRepository) CancelForUser(ctx context.Context, orderID, userID primitive.ObjectID) (models.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": orderID, "status": models.StatusPending, "userId": userID},
		bson.M{"$set": bson.M{"status": models.StatusCanceled}},
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{Matched: res.MatchedCount > 0}, nil
}

// ListPending returns a user's pending orders, newest first.
func (r *OrderRepository) ListPending(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error) {
	return r.listByStatus(ctx, bson.M{"userId": userID, "status": models.StatusPending}, page, limit)
}

// ListHistory returns a user's non-pending orders, newest first.
func (r *OrderRepository) ListHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error) {
	return r.listByStatus(ctx, bson.M{"userId": userID, "status": bson.M{"$ne": models.StatusPending}}, page, limit)
}

func (r *OrderRepository) listByStatus(ctx context.Context, match bson.M, page, limit int64) ([]models.Order, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		orderSort,
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0, limit)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindDetail loads one order joined with its user, branch and address
// display fields. Returns (nil, nil) when no order matches.
func (r *OrderRepository) FindDetail(ctx context.Context, orderID primitive.ObjectID) (*models.OrderDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": orderID}}},
		userLookup, userUnwind,
		branchLookup, branchUnwind,
		addressLookup, addressUnwind,
		detailProject,
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []models.OrderDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// ListDetails returns the joined projection for all orders, or for one
// order when orderID is set, paginated.
func (r *OrderRepository) ListDetails(ctx context.Context, orderID *primitive.ObjectID, page, limit int64) ([]models.OrderDetail, error) {
	match := bson.M{}
	if orderID != nil {
		match["_id"] = *orderID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		userLookup, userUnwind,
		branchLookup, branchUnwind,
		addressLookup, addressUnwind,
		detailProject,
		orderSort,
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := make([]models.OrderDetail, 0, limit)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// HasPendingForItem reports whether any pending order references itemID.
// Catalog mutations are refused while this holds.
func (r *OrderRepository) HasPendingForItem(ctx context.Context, itemID primitive.ObjectID) (bool, error) {
	return r.hasPending(ctx, bson.M{"orderItems.itemId": itemID})
}

// HasPendingForAddress reports whether any pending order delivers to addressID.
func (r *OrderRepository) HasPendingForAddress(ctx context.Context, addressID primitive.ObjectID) (bool, error) {
	return r.hasPending(ctx, bson.M{"addressId": addressID})
}

// HasPendingForBranch reports whether branchID has pending orders assigned.
func (r *OrderRepository) HasPendingForBranch(ctx context.Context, branchID primitive.ObjectID) (bool, error) {
	return r.hasPending(ctx, bson.M{"branchId": branchID})
}

func (r *OrderRepository) hasPending(ctx context.Context, filter bson.M) (bool, error) {
	filter["status"] = models.StatusPending
	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
