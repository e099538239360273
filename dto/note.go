package dto

import (
	"time"

	"secondbrain/model"
)

type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	NoteType string   `json:"noteType"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest is a partial update; absent fields stay untouched.
// An explicitly bad noteType on update is rejected rather than
// defaulted, unlike create.
type UpdateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	NoteType   *string   `json:"noteType" binding:"omitempty,notetype"`
	IsFavorite *bool     `json:"isFavorite"`
	IsArchived *bool     `json:"isArchived"`
	Tags       *[]string `json:"tags"`
}

func (r *UpdateNoteRequest) ToUpdate() *model.NoteUpdate {
	upd := &model.NoteUpdate{
		Title:      r.Title,
		Content:    r.Content,
		IsFavorite: r.IsFavorite,
		IsArchived: r.IsArchived,
		Tags:       r.Tags,
	}
	if r.NoteType != nil {
		t := model.NoteType(*r.NoteType)
		upd.NoteType = &t
	}
	return upd
}

// NoteResponse is the wire projection of a note. Tags is always an
// array, never null.
type NoteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NoteType   string    `json:"noteType"`
	IsFavorite bool      `json:"isFavorite"`
	IsArchived bool      `json:"isArchived"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:         note.ID,
		UserID:     note.UserID,
		Title:      note.Title,
		Content:    note.Content,
		NoteType:   string(note.NoteType),
		IsFavorite: note.IsFavorite,
		IsArchived: note.IsArchived,
		Tags:       tags,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
