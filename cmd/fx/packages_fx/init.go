package packages_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, providePackageService)

func providePackageRepo(db *mongo.Database) repositories.PackageRepository {
	return repositories.NewPackageRepository(db)
}

func providePackageService(packageRepo repositories.PackageRepository) services.PackageServiceInterface {
	return services.NewPackageService(packageRepo)
}
