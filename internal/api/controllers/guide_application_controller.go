package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/utils"
)

type GuideApplicationController struct {
	applicationService services.GuideApplicationServiceInterface
}

func NewGuideApplicationController(applicationService services.GuideApplicationServiceInterface) *GuideApplicationController {
	return &GuideApplicationController{
		applicationService: applicationService,
	}
}

// ListApplications godoc
// @Summary List pending guide applications
// @Tags GuideApplications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /guide-applications [get]
func (g *GuideApplicationController) ListApplications(c *gin.Context) {
	apps, err := g.applicationService.ListApplications(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ApplicationList{
		Applications: apps,
		Total:        len(apps),
	}, "Applications fetched successfully")
}

// SubmitApplication godoc
// @Summary Apply to become a tour guide
// @Description Rejected with 409 when a pending application already exists for the email
// @Tags GuideApplications
// @Accept json
// @Produce json
// @Param request body request_models.SubmitApplicationRequest true "Application payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /guide-applications [post]
func (g *GuideApplicationController) SubmitApplication(c *gin.Context) {
	var req request_models.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := g.applicationService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"applicationId": id}, "Application submitted successfully")
}

// AcceptApplication godoc
// @Summary Accept a guide application
// @Description Promotes the applicant to tour-guide, then deletes the application
// @Tags GuideApplications
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /guide-applications/accept/{id} [put]
func (g *GuideApplicationController) AcceptApplication(c *gin.Context) {
	if err := g.applicationService.Accept(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application accepted and role updated to tour-guide")
}

// RejectApplication godoc
// @Summary Reject a guide application
// @Tags GuideApplications
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /guide-applications/reject/{id} [delete]
func (g *GuideApplicationController) RejectApplication(c *gin.Context) {
	if err := g.applicationService.Reject(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application rejected successfully")
}
