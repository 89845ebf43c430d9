package controllers_fx

import (
	"go.uber.org/fx"

	"tourly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewGuideApplicationController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewStoryController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewDashboardController))
