package usecase

import (
	"context"
	"log"
	"strings"

	"secondbrain/apperr"
	"secondbrain/model"
	"secondbrain/services"
	"secondbrain/utils"
)

type NotesService struct {
	Notes  NotesRepository
	Shares SharesRepository
	Cache  *services.ShareCache
}

func (svc *NotesService) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperr.ValidationMsg("note title is required")
	}
	if len(title) > 200 {
		return "", apperr.ValidationMsg("note title exceeds maximum length")
	}
	return title, nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

func (svc *NotesService) List(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, apperr.ValidationMsg("user ID is required")
	}
	return svc.Notes.ListByUser(ctx, userID)
}

// Create builds a new note. An unknown or missing note type collapses
// to the default rather than failing the request.
func (svc *NotesService) Create(ctx context.Context, userID, title, content string, noteType model.NoteType, tags []string) (*model.Note, error) {
	if userID == "" {
		return nil, apperr.ValidationMsg("user ID is required")
	}

	title, err := svc.validateTitle(title)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:       utils.GenerateID(),
		UserID:   userID,
		Title:    title,
		Content:  content,
		NoteType: model.NormalizeNoteType(noteType),
		Tags:     normalizeTags(tags),
	}
	if err := svc.Notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update applies a partial update. Unlike create, an explicit bad note
// type here is a caller mistake and is rejected.
func (svc *NotesService) Update(ctx context.Context, userID, noteID string, upd *model.NoteUpdate) (*model.Note, error) {
	if upd == nil || upd.Empty() {
		return nil, apperr.ValidationMsg("no fields to update")
	}
	if upd.NoteType != nil && !model.ValidNoteType(*upd.NoteType) {
		return nil, apperr.ValidationMsg("invalid note type")
	}
	if upd.Title != nil {
		title, err := svc.validateTitle(*upd.Title)
		if err != nil {
			return nil, err
		}
		upd.Title = &title
	}
	if upd.Tags != nil {
		tags := normalizeTags(*upd.Tags)
		upd.Tags = &tags
	}

	return svc.Notes.Update(ctx, noteID, userID, upd)
}

// Delete removes the note and deactivates its shares so public links
// stop resolving immediately instead of dangling.
func (svc *NotesService) Delete(ctx context.Context, userID, noteID string) error {
	if err := svc.Notes.Delete(ctx, noteID, userID); err != nil {
		return err
	}

	tokens, err := svc.Shares.DeactivateByNote(ctx, noteID)
	if err != nil {
		// The note is already gone; resolve guards against a missing
		// note, so a failed deactivation is not fatal.
		log.Printf("warning: failed to deactivate shares for note %s: %v", noteID, err)
		return nil
	}
	for _, token := range tokens {
		svc.Cache.Invalidate(ctx, token)
	}
	return nil
}

func (svc *NotesService) ToggleFavorite(ctx context.Context, userID, noteID string) (*model.Note, error) {
	return svc.Notes.ToggleFavorite(ctx, noteID, userID)
}

func (svc *NotesService) ToggleArchive(ctx context.Context, userID, noteID string) (*model.Note, error) {
	return svc.Notes.ToggleArchive(ctx, noteID, userID)
}
