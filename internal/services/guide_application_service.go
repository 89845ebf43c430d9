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

type GuideApplicationServiceInterface interface {
	ListApplications(ctx context.Context) ([]db_models.GuideApplication, error)
	Submit(ctx context.Context, req request_models.SubmitApplicationRequest) (string, error)
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type GuideApplicationService struct {
	applicationRepo repositories.GuideApplicationRepository
	userRepo        repositories.UserRepository
}

func NewGuideApplicationService(
	applicationRepo repositories.GuideApplicationRepository,
	userRepo repositories.UserRepository) GuideApplicationServiceInterface {
	return &GuideApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

func (s *GuideApplicationService) ListApplications(ctx context.Context) ([]db_models.GuideApplication, error) {
	apps, err := s.applicationRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return apps, nil
}

func (s *GuideApplicationService) Submit(ctx context.Context, req request_models.SubmitApplicationRequest) (string, error) {
	pending, err := s.applicationRepo.FindPendingByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if pending != nil {
		return "", utils.ErrApplicationPending
	}

	app := &db_models.GuideApplication{
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		Reason:    req.Reason,
		CVLink:    req.CVLink,
		Status:    "pending",
		AppliedAt: time.Now(),
	}

	id, err := s.applicationRepo.Insert(ctx, app)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.Hex(), nil
}

// Accept promotes the applicant to tour-guide and deletes the application.
// The role update runs first; when it matches no user the application is
// kept so the workflow can be retried once the user record exists.
func (s *GuideApplicationService) Accept(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	app, err := s.applicationRepo.FindByID(ctx, oid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if app == nil {
		return utils.ErrApplicationNotFound
	}

	matched, err := s.userRepo.SetRoleByEmail(ctx, app.Email, db_models.RoleTourGuide)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrApplicantRoleUpdate
	}

	if _, err := s.applicationRepo.Delete(ctx, oid); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GuideApplicationService) Reject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	deleted, err := s.applicationRepo.Delete(ctx, oid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrApplicationNotFound
	}
	return nil
}
