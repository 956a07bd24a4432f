package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-backend/internal/models"
)

// BranchRepository persists branches and answers the nearest-open-branch
// query the order workflow depends on.
type BranchRepository struct {
	col *mongo.Collection
}

func NewBranchRepository(db *mongo.Database) *BranchRepository {
	return &BranchRepository{col: db.Collection("branches")}
}

// NearestOpen returns the open branch closest to location within
// maxDistanceMeters, or (nil, nil) when none is in range. Relies on the
// 2dsphere index over location.
func (r *BranchRepository) NearestOpen(ctx context.Context, location models.GeoPoint, maxDistanceMeters float64) (*models.Branch, error) {
	filter := bson.M{
		"isOpen": true,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    location,
				"$maxDistance": maxDistanceMeters,
			},
		},
	}

	var branch models.Branch
	err := r.col.FindOne(ctx, filter).Decode(&branch)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// List returns branches, or one branch when branchID is set, paginated.
func (r *BranchRepository) List(ctx context.Context, branchID *primitive.ObjectID, page, limit int64) ([]models.Branch, error) {
	match := bson.M{}
	if branchID != nil {
		match["_id"] = *branchID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$project", Value: bson.M{
			"branchName":  1,
			"location":    1,
			"phoneNumber": 1,
			"services":    1,
			"isOpen":      1,
			"createdBy":   1,
			"updatedBy":   1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "branchName", Value: 1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	branches := make([]models.Branch, 0, limit)
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BranchRepository) Insert(ctx context.Context, branch *models.Branch) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, branch)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies the non-nil patch fields; reports whether a branch matched.
func (r *BranchRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.BranchPatch, updatedBy primitive.ObjectID) (bool, error) {
	set := bson.M{"updatedBy": updatedBy}
	if patch.BranchName != nil {
		set["branchName"] = *patch.BranchName
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.PhoneNumber != nil {
		set["phoneNumber"] = *patch.PhoneNumber
	}
	if patch.Services != nil {
		set["services"] = patch.Services
	}
	if patch.IsOpen != nil {
		set["isOpen"] = *patch.IsOpen
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *BranchRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
