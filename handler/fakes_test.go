package handler

import (
	"context"
	"sync"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"
)

// Compact in-memory repositories backing the HTTP tests. Error
// semantics mirror the mongo implementations.

type memStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	notes  map[string]*model.Note
	tags   map[string]*model.Tag
	shares map[string]*model.SharedNote
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*model.User),
		notes:  make(map[string]*model.Note),
		tags:   make(map[string]*model.Tag),
		shares: make(map[string]*model.SharedNote),
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) CreateUser(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return apperr.Conflict("Email already exists")
		}
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (r memUsers) FindByID(_ context.Context, userID string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.NotFound("user not found")
}

type memNotes struct{ s *memStore }

func (r memNotes) Create(_ context.Context, note *model.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	copied := *note
	r.s.notes[note.ID] = &copied
	return nil
}

func (r memNotes) ListByUser(_ context.Context, userID string) ([]*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var notes []*model.Note
	for _, n := range r.s.notes {
		if n.UserID == userID {
			copied := *n
			notes = append(notes, &copied)
		}
	}
	return notes, nil
}

func (r memNotes) Get(_ context.Context, noteID, userID string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notes[noteID]; ok && n.UserID == userID {
		copied := *n
		return &copied, nil
	}
	return nil, apperr.NotFound("Note not found")
}

func (r memNotes) GetByID(_ context.Context, noteID string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notes[noteID]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, apperr.NotFound("Note not found")
}

func (r memNotes) Update(_ context.Context, noteID, userID string, upd *model.NoteUpdate) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[noteID]
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

func (r memNotes) Delete(_ context.Context, noteID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notes[noteID]; ok && n.UserID == userID {
		delete(r.s.notes, noteID)
		return nil
	}
	return apperr.NotFound("Note not found")
}

func (r memNotes) ToggleFavorite(_ context.Context, noteID, userID string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, apperr.NotFound("Note not found")
	}
	n.IsFavorite = !n.IsFavorite
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r memNotes) ToggleArchive(_ context.Context, noteID, userID string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, apperr.NotFound("Note not found")
	}
	n.IsArchived = !n.IsArchived
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r memNotes) PullTag(_ context.Context, userID, tagID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notes {
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

type memTags struct{ s *memStore }

func (r memTags) Create(_ context.Context, tag *model.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tag.CreatedAt = time.Now()
	copied := *tag
	r.s.tags[tag.ID] = &copied
	return nil
}

func (r memTags) ListByUser(_ context.Context, userID string) ([]*model.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var tags []*model.Tag
	for _, t := range r.s.tags {
		if t.UserID == userID {
			copied := *t
			tags = append(tags, &copied)
		}
	}
	return tags, nil
}

func (r memTags) Delete(_ context.Context, tagID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.tags[tagID]; ok && t.UserID == userID {
		delete(r.s.tags, tagID)
		return nil
	}
	return apperr.NotFound("Tag not found")
}

type memShares struct{ s *memStore }

func (r memShares) Create(_ context.Context, share *model.SharedNote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	share.CreatedAt = time.Now()
	share.UpdatedAt = share.CreatedAt
	copied := *share
	r.s.shares[share.ID] = &copied
	return nil
}

func (r memShares) FindActiveByNote(_ context.Context, noteID string) (*model.SharedNote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sh := range r.s.shares {
		if sh.NoteID == noteID && sh.IsActive {
			copied := *sh
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("share not found")
}

func (r memShares) FindActiveByToken(_ context.Context, token string) (*model.SharedNote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sh := range r.s.shares {
		if sh.ShareToken == token && sh.IsActive {
			copied := *sh
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Not found")
}

func (r memShares) IncrementViews(_ context.Context, shareID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sh, ok := r.s.shares[shareID]; ok {
		sh.ViewCount++
		sh.UpdatedAt = time.Now()
	}
	return nil
}

func (r memShares) DeactivateByNote(_ context.Context, noteID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var tokens []string
	for _, sh := range r.s.shares {
		if sh.NoteID == noteID && sh.IsActive {
			sh.IsActive = false
			sh.UpdatedAt = time.Now()
			tokens = append(tokens, sh.ShareToken)
		}
	}
	return tokens, nil
}
