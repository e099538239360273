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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

func (r *NotesRepo) Create(ctx context.Context, note *model.Note) error {
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return apperr.Internal("failed to create note", err)
	}
	return nil
}

// ListByUser retrieves every note owned by userID, newest first.
func (r *NotesRepo) ListByUser(ctx context.Context, userID string) ([]*model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Internal("failed to list notes", err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, apperr.Internal("failed to decode notes", err)
	}
	return notes, nil
}

// Get retrieves a note only when owned by userID. Absence and
// not-owned look identical to the caller.
func (r *NotesRepo) Get(ctx context.Context, noteID, userID string) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Note not found")
		}
		return nil, apperr.Internal("failed to get note", err)
	}
	return &note, nil
}

// GetByID retrieves a note with no ownership filter. Reserved for the
// public share-resolution path.
func (r *NotesRepo) GetByID(ctx context.Context, noteID string) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Note not found")
		}
		return nil, apperr.Internal("failed to get note", err)
	}
	return &note, nil
}

// Update applies a partial update and returns the resulting note.
// Last write wins; there is no version check on concurrent updates.
func (r *NotesRepo) Update(ctx context.Context, noteID, userID string, upd *model.NoteUpdate) (*model.Note, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.NoteType != nil {
		set["note_type"] = *upd.NoteType
	}
	if upd.IsFavorite != nil {
		set["is_favorite"] = *upd.IsFavorite
	}
	if upd.IsArchived != nil {
		set["is_archived"] = *upd.IsArchived
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}

	filter := bson.M{"_id": noteID, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Note not found")
		}
		return nil, apperr.Internal("failed to update note", err)
	}
	return &note, nil
}

func (r *NotesRepo) Delete(ctx context.Context, noteID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return apperr.Internal("failed to delete note", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Note not found")
	}
	return nil
}

// ToggleFavorite flips is_favorite and returns the updated note.
func (r *NotesRepo) ToggleFavorite(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return r.toggleFlag(ctx, noteID, userID, "is_favorite")
}

// ToggleArchive flips is_archived and returns the updated note.
func (r *NotesRepo) ToggleArchive(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return r.toggleFlag(ctx, noteID, userID, "is_archived")
}

func (r *NotesRepo) toggleFlag(ctx context.Context, noteID, userID, field string) (*model.Note, error) {
	filter := bson.M{"_id": noteID, "user_id": userID}

	var note model.Note
	if err := r.MongoCollection.FindOne(ctx, filter).Decode(&note); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Note not found")
		}
		return nil, apperr.Internal("failed to get note", err)
	}

	current := note.IsFavorite
	if field == "is_archived" {
		current = note.IsArchived
	}

	update := bson.M{"$set": bson.M{
		field:        !current,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Note not found")
		}
		return nil, apperr.Internal("failed to toggle note flag", err)
	}
	return &updated, nil
}

// PullTag removes tagID from the tag list of every note owned by
// userID. Called when a tag is deleted so notes never reference a
// tag that no longer exists.
func (r *NotesRepo) PullTag(ctx context.Context, userID, tagID string) error {
	filter := bson.M{"user_id": userID, "tags": tagID}
	update := bson.M{
		"$pull": bson.M{"tags": tagID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	if _, err := r.MongoCollection.UpdateMany(ctx, filter, update); err != nil {
		return apperr.Internal("failed to remove tag from notes", err)
	}
	return nil
}
