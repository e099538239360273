package usecase

import (
	"context"
	"sync"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"
)

// In-memory repository fakes with the same error semantics as the
// mongo-backed implementations.

type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]*model.User)}
}

func (r *fakeUsersRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperr.Conflict("Email already exists")
		}
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUsersRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (r *fakeUsersRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.NotFound("user not found")
}

type fakeNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[string]*model.Note)}
}

func (r *fakeNotesRepo) Create(_ context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	copied := *note
	r.notes[note.ID] = &copied
	return nil
}

func (r *fakeNotesRepo) ListByUser(_ context.Context, userID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var notes []*model.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			copied := *n
			notes = append(notes, &copied)
		}
	}
	return notes, nil
}

func (r *fakeNotesRepo) Get(_ context.Context, noteID, userID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notes[noteID]; ok && n.UserID == userID {
		copied := *n
		return &copied, nil
	}
	return nil, apperr.NotFound("Note not found")
}

func (r *fakeNotesRepo) GetByID(_ context.Context, noteID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notes[noteID]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, apperr.NotFound("Note not found")
}

func (r *fakeNotesRepo) Update(_ context.Context, noteID, userID string, upd *model.NoteUpdate) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, apperr.NotFound("Note not found")
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.NoteType != nil {
		n.NoteType = *upd.NoteType
	}
	if upd.IsFavorite != nil {
		n.IsFavorite = *upd.IsFavorite
	}
	if upd.IsArchived != nil {
		n.IsArchived = *upd.IsArchived
	}
	if upd.Tags != nil {
		n.Tags = *upd.Tags
	}
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r *fakeNotesRepo) Delete(_ context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notes[noteID]; ok && n.UserID == userID {
		delete(r.notes, noteID)
		return nil
	}
	return apperr.NotFound("Note not found")
}

func (r *fakeNotesRepo) ToggleFavorite(_ context.Context, noteID, userID string) (*model.Note, error) {
	return r.toggle(noteID, userID, true)
}

func (r *fakeNotesRepo) ToggleArchive(_ context.Context, noteID, userID string) (*model.Note, error) {
	return r.toggle(noteID, userID, false)
}

func (r *fakeNotesRepo) toggle(noteID, userID string, favorite bool) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, apperr.NotFound("Note not found")
	}
	if favorite {
		n.IsFavorite = !n.IsFavorite
	} else {
		n.IsArchived = !n.IsArchived
	}
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r *fakeNotesRepo) PullTag(_ context.Context, userID, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.UserID != userID {
			continue
		}
		kept := n.Tags[:0]
		for _, t := range n.Tags {
			if t != tagID {
				kept = append(kept, t)
			}
		}
		n.Tags = kept
	}
	return nil
}

type fakeTagsRepo struct {
	mu   sync.Mutex
	tags map[string]*model.Tag
}

func newFakeTagsRepo() *fakeTagsRepo {
	return &fakeTagsRepo{tags: make(map[string]*model.Tag)}
}

func (r *fakeTagsRepo) Create(_ context.Context, tag *model.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag.CreatedAt = time.Now()
	copied := *tag
	r.tags[tag.ID] = &copied
	return nil
}

func (r *fakeTagsRepo) ListByUser(_ context.Context, userID string) ([]*model.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tags []*model.Tag
	for _, t := range r.tags {
		if t.UserID == userID {
			copied := *t
			tags = append(tags, &copied)
		}
	}
	return tags, nil
}

func (r *fakeTagsRepo) Delete(_ context.Context, tagID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tags[tagID]; ok && t.UserID == userID {
		delete(r.tags, tagID)
		return nil
	}
	return apperr.NotFound("Tag not found")
}

type fakeSharesRepo struct {
	mu     sync.Mutex
	shares map[string]*model.SharedNote
}

func newFakeSharesRepo() *fakeSharesRepo {
	return &fakeSharesRepo{shares: make(map[string]*model.SharedNote)}
}

func (r *fakeSharesRepo) Create(_ context.Context, share *model.SharedNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	share.CreatedAt = time.Now()
	share.UpdatedAt = share.CreatedAt
	copied := *share
	r.shares[share.ID] = &copied
	return nil
}

func (r *fakeSharesRepo) FindActiveByNote(_ context.Context, noteID string) (*model.SharedNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shares {
		if s.NoteID == noteID && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("share not found")
}

func (r *fakeSharesRepo) FindActiveByToken(_ context.Context, token string) (*model.SharedNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shares {
		if s.ShareToken == token && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Not found")
}

func (r *fakeSharesRepo) IncrementViews(_ context.Context, shareID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.shares[shareID]; ok {
		s.ViewCount++
		s.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeSharesRepo) DeactivateByNote(_ context.Context, noteID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tokens []string
	for _, s := range r.shares {
		if s.NoteID == noteID && s.IsActive {
			s.IsActive = false
			s.UpdatedAt = time.Now()
			tokens = append(tokens, s.ShareToken)
		}
	}
	return tokens, nil
}
