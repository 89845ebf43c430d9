package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/utils"
)

type StoryController struct {
	storyService services.StoryServiceInterface
	storage      services.StorageServiceInterface
}

func NewStoryController(
	storyService services.StoryServiceInterface,
	storage services.StorageServiceInterface) *StoryController {
	return &StoryController{
		storyService: storyService,
		storage:      storage,
	}
}

// ListStories godoc
// @Summary List travel stories
// @Tags Stories
// @Produce json
// @Param email query string false "Filter by author email"
// @Success 200 {object} utils.APIResponse
// @Router /stories [get]
func (s *StoryController) ListStories(c *gin.Context) {
	stories, err := s.storyService.ListStories(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.StoryList{
		Stories: stories,
		Total:   len(stories),
	}, "Stories fetched successfully")
}

// SampleRandom godoc
// @Summary Fetch random stories
// @Tags Stories
// @Produce json
// @Param count query int false "Sample size (default 3)"
// @Success 200 {object} utils.APIResponse
// @Router /stories/random [get]
func (s *StoryController) SampleRandom(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))

	stories, err := s.storyService.SampleRandom(c.Request.Context(), count)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.StoryList{
		Stories: stories,
		Total:   len(stories),
	}, "Stories fetched successfully")
}

// CreateStory godoc
// @Summary Create a travel story
// @Description Accepts multipart form with image files, or plain JSON with pre-uploaded image references
// @Tags Stories
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /stories [post]
func (s *StoryController) CreateStory(c *gin.Context) {
	var req request_models.CreateStoryRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Title = c.PostForm("title")
		req.Description = c.PostForm("description")
		req.AuthorEmail = c.PostForm("authorEmail")

		form, err := c.MultipartForm()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		for _, file := range form.File["images"] {
			ref, err := s.storage.Save(file)
			if err != nil {
				utils.HandleServiceError(c, err)
				return
			}
			req.Images = append(req.Images, ref)
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := s.storyService.CreateStory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"storyId": id}, "Story added successfully")
}

// DeleteStory godoc
// @Summary Delete a story
// @Tags Stories
// @Produce json
// @Param id path string true "Story id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /stories/{id} [delete]
func (s *StoryController) DeleteStory(c *gin.Context) {
	if err := s.storyService.DeleteStory(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Story deleted successfully")
}

// PatchStory godoc
// @Summary Patch a story's images
// @Description addImages appends, removeImage removes all occurrences; lastUpdated is always stamped
// @Tags Stories
// @Accept json
// @Produce json
// @Param id path string true "Story id"
// @Param request body request_models.PatchStoryRequest true "Image patch"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /stories/{id} [patch]
func (s *StoryController) PatchStory(c *gin.Context) {
	var req request_models.PatchStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.storyService.PatchStory(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Story updated successfully")
}
