package repository

import (
	"context"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(client *mongo.Client, dbName string) *TagsRepo {
	return &TagsRepo{
		MongoCollection: client.Database(dbName).Collection("tags"),
	}
}

// Create inserts a tag. Duplicate names within a user are permitted.
func (r *TagsRepo) Create(ctx context.Context, tag *model.Tag) error {
	tag.CreatedAt = time.Now()

	if _, err := r.MongoCollection.InsertOne(ctx, tag); err != nil {
		return apperr.Internal("failed to create tag", err)
	}
	return nil
}

func (r *TagsRepo) ListByUser(ctx context.Context, userID string) ([]*model.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Internal("failed to list tags", err)
	}
	defer cursor.Close(ctx)

	var tags []*model.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, apperr.Internal("failed to decode tags", err)
	}
	return tags, nil
}

func (r *TagsRepo) Delete(ctx context.Context, tagID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": tagID, "user_id": userID})
	if err != nil {
		return apperr.Internal("failed to delete tag", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Tag not found")
	}
	return nil
}
