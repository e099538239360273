package model

import "time"

// DefaultTagColor is used when a tag is created without a color hint.
const DefaultTagColor = "#6366f1"

type Tag struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
