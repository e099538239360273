package model

import "time"

// SharedNote is a public read grant for a single note. At most one
// active share exists per note; repeat share requests reuse it.
type SharedNote struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	NoteID     string     `bson:"note_id" json:"note_id"`
	ShareToken string     `bson:"share_token" json:"share_token"`
	IsActive   bool       `bson:"is_active" json:"is_active"`
	ViewCount  int64      `bson:"view_count" json:"view_count"`
	ExpiresAt  *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// Expired reports whether the share has an expiry in the past.
func (s *SharedNote) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
