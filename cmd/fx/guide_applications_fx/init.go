package guide_applications_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideApplicationRepo, provideApplicationService)

func provideApplicationRepo(db *mongo.Database) repositories.GuideApplicationRepository {
	return repositories.NewGuideApplicationRepository(db)
}

func provideApplicationService(
	applicationRepo repositories.GuideApplicationRepository,
	userRepo repositories.UserRepository) services.GuideApplicationServiceInterface {
	return services.NewGuideApplicationService(applicationRepo, userRepo)
}
