package uploads_fx

import (
	"os"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"tourly/internal/services"
)

var Module = fx.Provide(
	provideStorage)

func provideStorage() services.StorageServiceInterface {
	storage, err := services.NewLocalStorage(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing upload storage")
	}
	return storage
}
