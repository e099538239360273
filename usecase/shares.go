package usecase

import (
	"context"
	"encoding/json"
	"time"

	"secondbrain/apperr"
	"secondbrain/model"
	"secondbrain/services"
	"secondbrain/utils"
)

type ShareService struct {
	Shares SharesRepository
	Notes  NotesRepository
	Cache  *services.ShareCache
}

// CreateOrReuse returns the note's active share token, minting one if
// none exists. The caller must own the note; a note that is absent or
// owned by someone else is reported as not found either way.
func (svc *ShareService) CreateOrReuse(ctx context.Context, userID, noteID string, expiresIn time.Duration) (string, error) {
	if _, err := svc.Notes.Get(ctx, noteID, userID); err != nil {
		return "", err
	}

	existing, err := svc.Shares.FindActiveByNote(ctx, noteID)
	if err == nil {
		if !existing.Expired(time.Now()) {
			return existing.ShareToken, nil
		}
		// The active share has lapsed; retire it and mint a fresh one.
		if _, err := svc.Shares.DeactivateByNote(ctx, noteID); err != nil {
			return "", err
		}
		svc.Cache.Invalidate(ctx, existing.ShareToken)
	} else if !apperr.IsNotFound(err) {
		return "", err
	}

	token, err := services.GenerateShareToken()
	if err != nil {
		return "", apperr.Internal("failed to mint share token", err)
	}

	share := &model.SharedNote{
		ID:         utils.GenerateID(),
		NoteID:     noteID,
		ShareToken: token,
		IsActive:   true,
	}
	if expiresIn > 0 {
		expiresAt := time.Now().Add(expiresIn)
		share.ExpiresAt = &expiresAt
	}
	if err := svc.Shares.Create(ctx, share); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve is the public read path: token → note, no authentication.
// Expired, revoked, and orphaned shares all look like plain not-found.
// Each successful resolve counts a view.
func (svc *ShareService) Resolve(ctx context.Context, token string) (*model.Note, error) {
	share, err := svc.Shares.FindActiveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if share.Expired(time.Now()) {
		return nil, apperr.NotFound("Not found")
	}

	if err := svc.Shares.IncrementViews(ctx, share.ID); err != nil {
		return nil, err
	}

	if data, ok := svc.Cache.Get(ctx, token); ok {
		var note model.Note
		if json.Unmarshal(data, &note) == nil {
			return &note, nil
		}
	}

	note, err := svc.Notes.GetByID(ctx, share.NoteID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(note); err == nil {
		svc.Cache.Set(ctx, token, data)
	}
	return note, nil
}

// Revoke deactivates the note's active shares. Only the owner may
// revoke; the response does not reveal whether the note exists for
// anyone else.
func (svc *ShareService) Revoke(ctx context.Context, userID, noteID string) error {
	if _, err := svc.Notes.Get(ctx, noteID, userID); err != nil {
		return err
	}

	tokens, err := svc.Shares.DeactivateByNote(ctx, noteID)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		svc.Cache.Invalidate(ctx, token)
	}
	return nil
}
