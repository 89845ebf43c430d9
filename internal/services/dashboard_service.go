package services

import (
	"context"

	"tourly/internal/models/db_models"
	"tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/utils"
)

type DashboardServiceInterface interface {
	AggregateStats(ctx context.Context) (*response_models.StatsReport, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

func (s *DashboardService) AggregateStats(ctx context.Context) (*response_models.StatsReport, error) {
	totalPayment, err := s.dashboardRepo.SumBookingPrices(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalGuides, err := s.dashboardRepo.CountUsersByRole(ctx, db_models.RoleTourGuide)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalTourists, err := s.dashboardRepo.CountUsersByRole(ctx, db_models.RoleTourist)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalPackages, err := s.dashboardRepo.CountPackages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalStories, err := s.dashboardRepo.CountStories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.StatsReport{
		TotalPayment:  totalPayment,
		TotalGuides:   totalGuides,
		TotalPackages: totalPackages,
		TotalTourists: totalTourists,
		TotalStories:  totalStories,
	}, nil
}
