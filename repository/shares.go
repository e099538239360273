package repository

import (
	"context"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SharesRepo struct {
	MongoCollection *mongo.Collection
}

func GetSharesRepo(client *mongo.Client, dbName string) *SharesRepo {
	return &SharesRepo{
		MongoCollection: client.Database(dbName).Collection("shared_notes"),
	}
}

func (r *SharesRepo) Create(ctx context.Context, share *model.SharedNote) error {
	share.CreatedAt = time.Now()
	share.UpdatedAt = share.CreatedAt

	if _, err := r.MongoCollection.InsertOne(ctx, share); err != nil {
		return apperr.Internal("failed to create share", err)
	}
	return nil
}

// FindActiveByNote returns the note's active share, if any.
func (r *SharesRepo) FindActiveByNote(ctx context.Context, noteID string) (*model.SharedNote, error) {
	var share model.SharedNote
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"note_id": noteID, "is_active": true}).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("share not found")
		}
		return nil, apperr.Internal("failed to find share", err)
	}
	return &share, nil
}

func (r *SharesRepo) FindActiveByToken(ctx context.Context, token string) (*model.SharedNote, error) {
	var share model.SharedNote
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"share_token": token, "is_active": true}).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Not found")
		}
		return nil, apperr.Internal("failed to find share", err)
	}
	return &share, nil
}

// IncrementViews bumps the view counter atomically.
func (r *SharesRepo) IncrementViews(ctx context.Context, shareID string) error {
	update := bson.M{
		"$inc": bson.M{"view_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": shareID}, update); err != nil {
		return apperr.Internal("failed to count share view", err)
	}
	return nil
}

// DeactivateByNote flips every active share for the note to inactive
// and returns the tokens that were live, so callers can drop cache
// entries. Used by explicit revoke and by note deletion.
func (r *SharesRepo) DeactivateByNote(ctx context.Context, noteID string) ([]string, error) {
	filter := bson.M{"note_id": noteID, "is_active": true}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("failed to find shares", err)
	}
	defer cursor.Close(ctx)

	var shares []*model.SharedNote
	if err = cursor.All(ctx, &shares); err != nil {
		return nil, apperr.Internal("failed to decode shares", err)
	}

	tokens := make([]string, 0, len(shares))
	for _, share := range shares {
		tokens = append(tokens, share.ShareToken)
	}

	update := bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now(),
	}}
	if _, err := r.MongoCollection.UpdateMany(ctx, filter, update); err != nil {
		return nil, apperr.Internal("failed to deactivate shares", err)
	}
	return tokens, nil
}
