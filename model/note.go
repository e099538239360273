package model

import (
	"time"
)

// NoteType is the closed set of note variants. Unknown values collapse
// to TypeNote on create.
type NoteType string

const (
	TypeNote     NoteType = "note"
	TypeLink     NoteType = "link"
	TypeResource NoteType = "resource"
	TypeIdea     NoteType = "idea"
)

func ValidNoteType(t NoteType) bool {
	switch t {
	case TypeNote, TypeLink, TypeResource, TypeIdea:
		return true
	}
	return false
}

// NormalizeNoteType maps unknown or empty values to the default type.
func NormalizeNoteType(t NoteType) NoteType {
	if ValidNoteType(t) {
		return t
	}
	return TypeNote
}

type Note struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	NoteType   NoteType  `bson:"note_type" json:"note_type"`
	IsFavorite bool      `bson:"is_favorite" json:"is_favorite"`
	IsArchived bool      `bson:"is_archived" json:"is_archived"`
	Tags       []string  `bson:"tags" json:"tags"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// NoteUpdate carries a partial update; nil fields are left untouched.
type NoteUpdate struct {
	Title      *string
	Content    *string
	NoteType   *NoteType
	IsFavorite *bool
	IsArchived *bool
	Tags       *[]string
}

func (u *NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.NoteType == nil &&
		u.IsFavorite == nil && u.IsArchived == nil && u.Tags == nil
}
