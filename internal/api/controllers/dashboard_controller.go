package controllers

import (
	"github.com/gin-gonic/gin"

	"tourly/internal/services"
	"tourly/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats godoc
// @Summary Get admin dashboard stats
// @Description Total payment volume plus guide/package/tourist/story counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (d *DashboardController) GetStats(c *gin.Context) {
	stats, err := d.dashboardService.AggregateStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
