package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates every index the query paths depend on. Geo queries
// against branches and addresses require the 2dsphere indexes; the text
// index backs the catalog search.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ensureOrderIndexes(ctx, db); err != nil {
		return err
	}
	if err := ensureBranchIndexes(ctx, db); err != nil {
		return err
	}
	if err := ensureAddressIndexes(ctx, db); err != nil {
		return err
	}
	if err := ensureItemIndexes(ctx, db); err != nil {
		return err
	}
	return ensureUserIndexes(ctx, db)
}

func ensureOrderIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("userId_status"),
	})
	return err
}

func ensureBranchIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("branches").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().SetName("location_2dsphere"),
	})
	return err
}

func ensureAddressIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := db.Collection("addresses").Indexes()

	_, err := indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_index"),
	})
	if err != nil {
		return err
	}
	_, err = indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().SetName("location_2dsphere"),
	})
	return err
}

func ensureItemIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := db.Collection("items").Indexes()

	_, err := indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "categoryId", Value: 1}},
		Options: options.Index().SetName("categoryId_index"),
	})
	if err != nil {
		return err
	}
	_, err = indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "itemName", Value: "text"}, {Key: "ingredients", Value: "text"}},
		Options: options.Index().SetName("item_text_search"),
	})
	return err
}

func ensureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})
	return err
}
