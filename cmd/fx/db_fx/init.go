package db_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *mongo.Database {
	return infra.InitMongo()
}
