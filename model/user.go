package model

import "time"

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FullName     string    `bson:"full_name" json:"full_name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
