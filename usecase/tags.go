package usecase

import (
	"context"
	"strings"

	"secondbrain/apperr"
	"secondbrain/model"
	"secondbrain/utils"
)

type TagsService struct {
	Tags  TagsRepository
	Notes NotesRepository
}

func (svc *TagsService) List(ctx context.Context, userID string) ([]*model.Tag, error) {
	if userID == "" {
		return nil, apperr.ValidationMsg("user ID is required")
	}
	return svc.Tags.ListByUser(ctx, userID)
}

// Create inserts a tag. Names need not be unique within a user.
func (svc *TagsService) Create(ctx context.Context, userID, name, color string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ValidationMsg("tag name is required")
	}
	if color == "" {
		color = model.DefaultTagColor
	}

	tag := &model.Tag{
		ID:     utils.GenerateID(),
		UserID: userID,
		Name:   name,
		Color:  color,
	}
	if err := svc.Tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes the tag and pulls its id out of every note that
// referenced it, so note tag lists never hold dead references.
func (svc *TagsService) Delete(ctx context.Context, userID, tagID string) error {
	if err := svc.Tags.Delete(ctx, tagID, userID); err != nil {
		return err
	}
	return svc.Notes.PullTag(ctx, userID, tagID)
}
