package bookings_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/internal/repositories"
	"tourly/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *mongo.Database) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo)
}
