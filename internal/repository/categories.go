package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-backend/internal/models"
)

// CategoryRepository persists menu categories.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// List returns categories sorted by display order, or one category when
// categoryID is set, paginated.
func (r *CategoryRepository) List(ctx context.Context, categoryID *primitive.ObjectID, page, limit int64) ([]models.Category, error) {
	match := bson.M{}
	if categoryID != nil {
		match["_id"] = *categoryID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "displayOrder", Value: 1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0, limit)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category *models.Category) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies the non-nil patch fields; reports whether a category matched.
func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.CategoryPatch, updatedBy primitive.ObjectID) (bool, error) {
	set := bson.M{"updatedBy": updatedBy}
	if patch.CategoryName != nil {
		set["categoryName"] = *patch.CategoryName
	}
	if patch.CategoryDescription != nil {
		set["categoryDescription"] = *patch.CategoryDescription
	}
	if patch.DisplayOrder != nil {
		set["displayOrder"] = *patch.DisplayOrder
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
