package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/pkg/utils"
)

type fakeStoryRepo struct {
	stories map[primitive.ObjectID]*db_models.Story
	sampled int
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: make(map[primitive.ObjectID]*db_models.Story)}
}

func (f *fakeStoryRepo) Find(_ context.Context, authorEmail string) ([]db_models.Story, error) {
	var out []db_models.Story
	for _, s := range f.stories {
		if authorEmail != "" && s.AuthorEmail != authorEmail {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStoryRepo) Sample(_ context.Context, n int) ([]db_models.Story, error) {
	f.sampled = n
	var out []db_models.Story
	for _, s := range f.stories {
		if len(out) == n {
			break
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStoryRepo) Insert(_ context.Context, story *db_models.Story) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *story
	copied.ID = id
	copied.Images = append([]string(nil), story.Images...)
	f.stories[id] = &copied
	return id, nil
}

func (f *fakeStoryRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.stories[id]; !ok {
		return 0, nil
	}
	delete(f.stories, id)
	return 1, nil
}

func (f *fakeStoryRepo) PatchImages(_ context.Context, id primitive.ObjectID, addImages []string, removeImage string) (int64, error) {
	s, ok := f.stories[id]
	if !ok {
		return 0, nil
	}
	now := time.Now()
	s.LastUpdated = &now
	s.Images = append(s.Images, addImages...)
	if removeImage != "" {
		kept := s.Images[:0]
		for _, img := range s.Images {
			if img != removeImage {
				kept = append(kept, img)
			}
		}
		s.Images = kept
	}
	return 1, nil
}

func storyRequest() request_models.CreateStoryRequest {
	return request_models.CreateStoryRequest{
		Title:       "Three days in Sapa",
		Description: "Rice terraces and fog",
		AuthorEmail: "lena@example.com",
		Images:      []string{"uploads/1-sapa.jpg"},
	}
}

func TestCreateStory(t *testing.T) {
	repo := newFakeStoryRepo()
	svc := NewStoryService(repo)
	ctx := context.Background()

	id, err := svc.CreateStory(ctx, storyRequest())
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	stored := repo.stories[oid]
	require.NotNil(t, stored)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Nil(t, stored.LastUpdated)

	req := storyRequest()
	req.Images = nil
	_, err = svc.CreateStory(ctx, req)
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}

func TestListStoriesByAuthor(t *testing.T) {
	repo := newFakeStoryRepo()
	svc := NewStoryService(repo)
	ctx := context.Background()

	_, err := svc.CreateStory(ctx, storyRequest())
	require.NoError(t, err)

	other := storyRequest()
	other.AuthorEmail = "milo@example.com"
	_, err = svc.CreateStory(ctx, other)
	require.NoError(t, err)

	all, err := svc.ListStories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListStories(ctx, "lena@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "lena@example.com", mine[0].AuthorEmail)
}

func TestSampleRandomStoriesClamping(t *testing.T) {
	repo := newFakeStoryRepo()
	svc := NewStoryService(repo)
	ctx := context.Background()

	_, err := svc.SampleRandom(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultSampleSize, repo.sampled)

	_, err = svc.SampleRandom(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, maxSampleSize, repo.sampled)

	_, err = svc.SampleRandom(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.sampled)
}

func TestPatchStory(t *testing.T) {
	repo := newFakeStoryRepo()
	svc := NewStoryService(repo)
	ctx := context.Background()

	id, err := svc.CreateStory(ctx, storyRequest())
	require.NoError(t, err)
	oid, _ := primitive.ObjectIDFromHex(id)

	err = svc.PatchStory(ctx, "bad", request_models.PatchStoryRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	err = svc.PatchStory(ctx, primitive.NewObjectID().Hex(), request_models.PatchStoryRequest{})
	assert.ErrorIs(t, err, utils.ErrStoryNotFound)

	// Adding and removing the same image in one patch nets out to no
	// change, but the story is still stamped as updated.
	before := append([]string(nil), repo.stories[oid].Images...)
	err = svc.PatchStory(ctx, id, request_models.PatchStoryRequest{
		AddImages:   []string{"uploads/2-extra.jpg"},
		RemoveImage: "uploads/2-extra.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, before, repo.stories[oid].Images)
	assert.NotNil(t, repo.stories[oid].LastUpdated)

	err = svc.PatchStory(ctx, id, request_models.PatchStoryRequest{
		AddImages: []string{"uploads/3-more.jpg"},
	})
	require.NoError(t, err)
	assert.Contains(t, repo.stories[oid].Images, "uploads/3-more.jpg")
}

func TestDeleteStory(t *testing.T) {
	repo := newFakeStoryRepo()
	svc := NewStoryService(repo)
	ctx := context.Background()

	id, err := svc.CreateStory(ctx, storyRequest())
	require.NoError(t, err)

	err = svc.DeleteStory(ctx, "oops")
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	err = svc.DeleteStory(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, utils.ErrStoryNotFound)

	require.NoError(t, svc.DeleteStory(ctx, id))
	assert.Empty(t, repo.stories)
}
