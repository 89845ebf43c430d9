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

type UserServiceInterface interface {
	FindUsers(ctx context.Context, filter request_models.UserFilter) ([]db_models.User, error)
	RegisterUser(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, req request_models.UpdateProfileRequest) error
	GetGuideByID(ctx context.Context, id string) (*db_models.User, error)
	ListGuides(ctx context.Context) ([]db_models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) FindUsers(ctx context.Context, filter request_models.UserFilter) ([]db_models.User, error) {
	var role db_models.Role
	if filter.Role != "" {
		parsed, ok := db_models.ParseRole(filter.Role)
		if !ok {
			return nil, utils.ErrInvalidRole
		}
		role = parsed
	}

	users, err := s.userRepo.Find(ctx, filter.Name, filter.Email, role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

// RegisterUser is idempotent on email: an existing record is never
// overwritten, the caller gets a conflict instead.
func (s *UserService) RegisterUser(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUserAlreadyExist
	}

	now := time.Now()
	user := &db_models.User{
		Name:      req.Name,
		Email:     req.Email,
		Photo:     req.Photo,
		Role:      db_models.RoleTourist,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	user.ID = id

	return user, nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	matched, err := s.userRepo.SetRole(ctx, oid, db_models.RoleAdmin)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, req request_models.UpdateProfileRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	matched, err := s.userRepo.UpdateProfile(ctx, oid, req)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) GetGuideByID(ctx context.Context, id string) (*db_models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	guide, err := s.userRepo.FindGuideByID(ctx, oid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}
	return guide, nil
}

func (s *UserService) ListGuides(ctx context.Context) ([]db_models.User, error) {
	guides, err := s.userRepo.FindByRole(ctx, db_models.RoleTourGuide)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return guides, nil
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if user == nil {
		return false, nil
	}
	return user.Role == db_models.RoleAdmin, nil
}
