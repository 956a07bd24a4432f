package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-backend/internal/models"
)

// AddressRepository persists user delivery addresses. Mutations are always
// scoped by owner so a user can never touch another user's address.
type AddressRepository struct {
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection("addresses")}
}

// FindByID returns (nil, nil) when no address matches.
func (r *AddressRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error) {
	var address models.Address
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// List returns a user's addresses, or one of them when addressID is set.
func (r *AddressRepository) List(ctx context.Context, userID primitive.ObjectID, addressID *primitive.ObjectID, page, limit int64) ([]models.Address, error) {
	match := bson.M{"userId": userID}
	if addressID != nil {
		match["_id"] = *addressID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$project", Value: bson.M{
			"label":           1,
			"completeAddress": 1,
			"location":        1,
			"userId":          1,
		}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := make([]models.Address, 0, limit)
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepository) Insert(ctx context.Context, address *models.Address) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, address)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies the non-nil patch fields to an address owned by userID;
// reports whether one matched.
func (r *AddressRepository) Update(ctx context.Context, id, userID primitive.ObjectID, patch models.AddressPatch) (bool, error) {
	set := bson.M{}
	if patch.Label != nil {
		set["label"] = *patch.Label
	}
	if patch.CompleteAddress != nil {
		set["completeAddress"] = *patch.CompleteAddress
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if len(set) == 0 {
		err := r.col.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Err()
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes an address owned by userID; reports whether one matched.
func (r *AddressRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
