package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-backend/internal/models"
)

// ItemRepository persists catalog items and serves the grouped listings.
type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection("items")}
}

// FindByID returns (nil, nil) when no item matches.
func (r *ItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindDetail loads one item joined with its category display fields.
// Returns (nil, nil) when no item matches.
func (r *ItemRepository) FindDetail(ctx context.Context, id primitive.ObjectID) (*models.ItemDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"itemName":            1,
			"itemDescription":     1,
			"ingredients":         1,
			"price":               1,
			"categoryId":          "$category._id",
			"categoryName":        "$category.categoryName",
			"categoryDescription": "$category.categoryDescription",
		}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []models.ItemDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// ListGroupedByCategory returns matching items grouped under their category,
// paginated over the category groups.
func (r *ItemRepository) ListGroupedByCategory(ctx context.Context, filter models.ItemListFilter, page, limit int64) ([]models.CategoryItems, error) {
	match := bson.M{}
	if filter.CategoryID != nil {
		match["categoryId"] = *filter.CategoryID
	}
	if filter.MaxPrice != nil {
		match["price"] = bson.M{"$lte": *filter.MaxPrice}
	}
	if filter.SearchText != "" {
		match["$text"] = bson.M{"$search": filter.SearchText}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$categoryId",
			"items": bson.M{"$push": "$$ROOT"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      0,
			"category": "$category",
			"items": bson.M{"$map": bson.M{
				"input": "$items",
				"as":    "item",
				"in": bson.M{
					"_id":         "$$item._id",
					"name":        "$$item.itemName",
					"description": "$$item.itemDescription",
					"ingredients": "$$item.ingredients",
					"price":       "$$item.price",
				},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "category.displayOrder", Value: 1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := make([]models.CategoryItems, 0, limit)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies the non-nil patch fields; reports whether an item matched.
func (r *ItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ItemPatch, updatedBy primitive.ObjectID) (bool, error) {
	set := bson.M{"updatedBy": updatedBy}
	if patch.ItemName != nil {
		set["itemName"] = *patch.ItemName
	}
	if patch.ItemDescription != nil {
		set["itemDescription"] = *patch.ItemDescription
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.Ingredients != nil {
		set["ingredients"] = *patch.Ingredients
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
