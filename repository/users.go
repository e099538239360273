package repository

import (
	"context"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client, dbName string) *UsersRepo {
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection("users"),
	}
}

// CreateUser inserts a new user. A duplicate email trips the unique
// index and surfaces as a conflict.
func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("Email already exists")
		}
		return apperr.Internal("failed to create user", err)
	}
	return nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal("failed to find user", err)
	}
	return &user, nil
}

func (r *UsersRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal("failed to find user", err)
	}
	return &user, nil
}
