package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/repositories"
	"tourly/pkg/utils"
)

type StoryServiceInterface interface {
	ListStories(ctx context.Context, authorEmail string) ([]db_models.Story, error)
	SampleRandom(ctx context.Context, n int) ([]db_models.Story, error)
	CreateStory(ctx context.Context, req request_models.CreateStoryRequest) (string, error)
	DeleteStory(ctx context.Context, id string) error
	PatchStory(ctx context.Context, id string, req request_models.PatchStoryRequest) error
}

type StoryService struct {
	storyRepo repositories.StoryRepository
}

func NewStoryService(storyRepo repositories.StoryRepository) StoryServiceInterface {
	return &StoryService{
		storyRepo: storyRepo,
	}
}

func (s *StoryService) ListStories(ctx context.Context, authorEmail string) ([]db_models.Story, error) {
	stories, err := s.storyRepo.Find(ctx, authorEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stories, nil
}

func (s *StoryService) SampleRandom(ctx context.Context, n int) ([]db_models.Story, error) {
	n = clampSampleSize(n)
	stories, err := s.storyRepo.Sample(ctx, n)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stories, nil
}

func (s *StoryService) CreateStory(ctx context.Context, req request_models.CreateStoryRequest) (string, error) {
	if req.Title == "" || req.Description == "" || req.AuthorEmail == "" || len(req.Images) == 0 {
		return "", utils.ErrMissingFields
	}

	story := &db_models.Story{
		Title:       req.Title,
		Description: req.Description,
		AuthorEmail: req.AuthorEmail,
		Images:      req.Images,
		CreatedAt:   time.Now(),
	}

	id, err := s.storyRepo.Insert(ctx, story)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.Hex(), nil
}

func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	deleted, err := s.storyRepo.Delete(ctx, oid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrStoryNotFound
	}
	return nil
}

// PatchStory stamps lastUpdated even when no image change was requested.
func (s *StoryService) PatchStory(ctx context.Context, id string, req request_models.PatchStoryRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	matched, err := s.storyRepo.PatchImages(ctx, oid, req.AddImages, req.RemoveImage)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrStoryNotFound
	}
	return nil
}
