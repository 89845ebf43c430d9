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

const (
	defaultSampleSize = 3
	maxSampleSize     = 20
)

type PackageServiceInterface interface {
	ListPackages(ctx context.Context) ([]db_models.TourPackage, error)
	GetPackageByID(ctx context.Context, id string) (*db_models.TourPackage, error)
	SampleRandom(ctx context.Context, n int) ([]db_models.TourPackage, error)
	CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (string, error)
}

type PackageService struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageServiceInterface {
	return &PackageService{
		packageRepo: packageRepo,
	}
}

func (s *PackageService) ListPackages(ctx context.Context) ([]db_models.TourPackage, error) {
	packages, err := s.packageRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return packages, nil
}

func (s *PackageService) GetPackageByID(ctx context.Context, id string) (*db_models.TourPackage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	pkg, err := s.packageRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *PackageService) SampleRandom(ctx context.Context, n int) ([]db_models.TourPackage, error) {
	n = clampSampleSize(n)
	packages, err := s.packageRepo.Sample(ctx, n)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return packages, nil
}

func (s *PackageService) CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (string, error) {
	if req.Title == "" || req.Description == "" || req.Price < 0 ||
		req.CoverImage == "" || len(req.TourPlan) == 0 {
		return "", utils.ErrMissingFields
	}

	pkg := &db_models.TourPackage{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		TourPlan:      req.TourPlan,
		TourType:      req.TourType,
		CoverImage:    req.CoverImage,
		GalleryImages: req.GalleryImages,
		CreatedAt:     time.Now(),
	}

	id, err := s.packageRepo.Insert(ctx, pkg)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.Hex(), nil
}

func clampSampleSize(n int) int {
	if n <= 0 {
		return defaultSampleSize
	}
	if n > maxSampleSize {
		return maxSampleSize
	}
	return n
}
