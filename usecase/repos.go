package usecase

import (
	"context"

	"secondbrain/model"
)

// Repository seams. The mongo-backed implementations live in
// repository/; tests substitute in-memory fakes.

type UsersRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
}

type NotesRepository interface {
	Create(ctx context.Context, note *model.Note) error
	ListByUser(ctx context.Context, userID string) ([]*model.Note, error)
	Get(ctx context.Context, noteID, userID string) (*model.Note, error)
	GetByID(ctx context.Context, noteID string) (*model.Note, error)
	Update(ctx context.Context, noteID, userID string, upd *model.NoteUpdate) (*model.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
	ToggleFavorite(ctx context.Context, noteID, userID string) (*model.Note, error)
	ToggleArchive(ctx context.Context, noteID, userID string) (*model.Note, error)
	PullTag(ctx context.Context, userID, tagID string) error
}

type TagsRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	ListByUser(ctx context.Context, userID string) ([]*model.Tag, error)
	Delete(ctx context.Context, tagID, userID string) error
}

type SharesRepository interface {
	Create(ctx context.Context, share *model.SharedNote) error
	FindActiveByNote(ctx context.Context, noteID string) (*model.SharedNote, error)
	FindActiveByToken(ctx context.Context, token string) (*model.SharedNote, error)
	IncrementViews(ctx context.Context, shareID string) error
	DeactivateByNote(ctx context.Context, noteID string) ([]string, error)
}
