package stories_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideStoryRepo, provideStoryService)

func provideStoryRepo(db *mongo.Database) repositories.StoryRepository {
	return repositories.NewStoryRepository(db)
}

func provideStoryService(storyRepo repositories.StoryRepository) services.StoryServiceInterface {
	return services.NewStoryService(storyRepo)
}
