package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUsers godoc
// @Summary List users
// @Description Filter by name/email (case-insensitive substring) and role (exact)
// @Tags Users
// @Produce json
// @Param name query string false "Name substring"
// @Param email query string false "Email substring"
// @Param role query string false "Role (tourist | tour-guide | admin)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) GetUsers(c *gin.Context) {
	var filter request_models.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	users, err := u.userService.FindUsers(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserList{
		Users: users,
		Total: len(users),
	}, "Users fetched successfully")
}

// RegisterUser godoc
// @Summary Register a user
// @Description Idempotent on email; an existing record is never overwritten
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterUserRequest true "User registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (u *UserController) RegisterUser(c *gin.Context) {
	var req request_models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User registered successfully")
}

// CheckAdmin godoc
// @Summary Check whether a user is an admin
// @Description Self-scoped: the email must match the caller's token claim
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (u *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		return
	}

	isAdmin, err := u.userService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"admin": isAdmin}, "Admin status fetched")
}

// PromoteToAdmin godoc
// @Summary Promote a user to admin
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/admin/{id} [patch]
func (u *UserController) PromoteToAdmin(c *gin.Context) {
	if err := u.userService.PromoteToAdmin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User promoted to admin")
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Description Patches only the provided fields, always stamps updatedAt
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UpdateProfileRequest true "Partial profile fields"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [patch]
func (u *UserController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.UpdateProfile(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

// GetGuideByID godoc
// @Summary Get a tour guide by id
// @Description Lookup constrained to role tour-guide; malformed ids are 400
// @Tags Users
// @Produce json
// @Param id path string true "Guide id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (u *UserController) GetGuideByID(c *gin.Context) {
	guide, err := u.userService.GetGuideByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Guide fetched successfully")
}

// ListGuides godoc
// @Summary List all tour guides
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /guides [get]
func (u *UserController) ListGuides(c *gin.Context) {
	guides, err := u.userService.ListGuides(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserList{
		Users: guides,
		Total: len(guides),
	}, "Guides fetched successfully")
}
