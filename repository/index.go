package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the repositories rely on. Safe to
// call repeatedly; existing indexes are left in place.
func SetupIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, users); err != nil {
		return err
	}

	notes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "tags", Value: 1}}},
	}
	if _, err := db.Collection("notes").Indexes().CreateMany(ctx, notes); err != nil {
		return err
	}

	tags := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := db.Collection("tags").Indexes().CreateMany(ctx, tags); err != nil {
		return err
	}

	shares := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "share_token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "note_id", Value: 1}, {Key: "is_active", Value: 1}}},
	}
	if _, err := db.Collection("shared_notes").Indexes().CreateMany(ctx, shares); err != nil {
		return err
	}

	return nil
}
