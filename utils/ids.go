package utils

import "github.com/google/uuid"

// GenerateID returns a new uuid string for use as a document _id.
func GenerateID() string {
	return uuid.New().String()
}
