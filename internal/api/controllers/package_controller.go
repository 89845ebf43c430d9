package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
	storage        services.StorageServiceInterface
}

func NewPackageController(
	packageService services.PackageServiceInterface,
	storage services.StorageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
		storage:        storage,
	}
}

// ListPackages godoc
// @Summary List tour packages
// @Tags Packages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /packages [get]
func (p *PackageController) ListPackages(c *gin.Context) {
	packages, err := p.packageService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PackageList{
		Packages: packages,
		Total:    len(packages),
	}, "Packages fetched successfully")
}

// GetPackageByID godoc
// @Summary Get a tour package
// @Tags Packages
// @Produce json
// @Param id path string true "Package id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /packages/{id} [get]
func (p *PackageController) GetPackageByID(c *gin.Context) {
	pkg, err := p.packageService.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

// SampleRandom godoc
// @Summary Fetch random packages
// @Tags Packages
// @Produce json
// @Param count query int false "Sample size (default 3)"
// @Success 200 {object} utils.APIResponse
// @Router /packages/random [get]
func (p *PackageController) SampleRandom(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))

	packages, err := p.packageService.SampleRandom(c.Request.Context(), count)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PackageList{
		Packages: packages,
		Total:    len(packages),
	}, "Packages fetched successfully")
}

// CreatePackage godoc
// @Summary Create a tour package
// @Description Accepts multipart form with coverImage/galleryImages files, or plain JSON with pre-uploaded image references
// @Tags Packages
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /packages [post]
func (p *PackageController) CreatePackage(c *gin.Context) {
	var req request_models.CreatePackageRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		parsed, err := p.bindMultipart(c)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		req = *parsed
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := p.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"packageId": id}, "Package added successfully")
}

func (p *PackageController) bindMultipart(c *gin.Context) (*request_models.CreatePackageRequest, error) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	var tourPlan []db_models.TourPlanDay
	if raw := c.PostForm("tourPlan"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tourPlan); err != nil {
			return nil, utils.ErrMissingFields
		}
	}

	req := &request_models.CreatePackageRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       price,
		TourPlan:    tourPlan,
		TourType:    c.PostForm("tourType"),
	}

	cover, err := c.FormFile("coverImage")
	if err != nil {
		return nil, utils.ErrMissingFields
	}
	ref, err := p.storage.Save(cover)
	if err != nil {
		return nil, err
	}
	req.CoverImage = ref

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	for _, file := range form.File["galleryImages"] {
		ref, err := p.storage.Save(file)
		if err != nil {
			return nil, err
		}
		req.GalleryImages = append(req.GalleryImages, ref)
	}

	return req, nil
}
