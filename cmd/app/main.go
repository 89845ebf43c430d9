package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"tourly/cmd/fx/bookings_fx"
	"tourly/cmd/fx/controllers_fx"
	"tourly/cmd/fx/dashboard_fx"
	"tourly/cmd/fx/db_fx"
	"tourly/cmd/fx/guide_applications_fx"
	"tourly/cmd/fx/packages_fx"
	"tourly/cmd/fx/payment_fx"
	"tourly/cmd/fx/stories_fx"
	"tourly/cmd/fx/uploads_fx"
	"tourly/cmd/fx/users_fx"
	"tourly/internal/api/controllers"
	"tourly/internal/infra"
	"tourly/internal/services"
	"tourly/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = time.RFC3339

	app := fx.New(
		db_fx.Module,
		users_fx.Module,
		guide_applications_fx.Module,
		bookings_fx.Module,
		packages_fx.Module,
		stories_fx.Module,
		dashboard_fx.Module,
		payment_fx.Module,
		uploads_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *mongo.Database) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Info().Str("port", port).Msg("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.CloseMongo(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	applicationController *controllers.GuideApplicationController,
	bookingController *controllers.BookingController,
	packageController *controllers.PackageController,
	storyController *controllers.StoryController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController,
	userService services.UserServiceInterface) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Static("/uploads", "./uploads")

	RegisterRoutes(r,
		authController, userController, applicationController,
		bookingController, packageController, storyController,
		paymentController, dashboardController, userService)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	applicationController *controllers.GuideApplicationController,
	bookingController *controllers.BookingController,
	packageController *controllers.PackageController,
	storyController *controllers.StoryController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController,
	userService services.UserServiceInterface) {

	auth := middleware.JWTAuthMiddleware()
	admin := middleware.AdminMiddleware(userService)

	r.POST("/auth/token", authController.IssueToken)

	users := r.Group("/users")
	users.GET("", auth, admin, userController.GetUsers)
	users.POST("", userController.RegisterUser)
	users.GET("/admin/:email", auth, userController.CheckAdmin)
	users.PATCH("/admin/:id", auth, admin, userController.PromoteToAdmin)
	users.GET("/:id", userController.GetGuideByID)
	users.PATCH("/:id", auth, userController.UpdateProfile)

	r.GET("/guides", userController.ListGuides)

	applications := r.Group("/guide-applications")
	applications.GET("", auth, admin, applicationController.ListApplications)
	applications.POST("", applicationController.SubmitApplication)
	applications.PUT("/accept/:id", auth, admin, applicationController.AcceptApplication)
	applications.DELETE("/reject/:id", auth, admin, applicationController.RejectApplication)

	bookings := r.Group("/bookings")
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", auth, bookingController.ListByTourist)
	bookings.GET("/guide", auth, bookingController.ListByGuide)
	bookings.PATCH("/payment/:id", auth, bookingController.RecordPayment)
	bookings.PATCH("/accept/:id", auth, bookingController.AcceptTour)
	bookings.PATCH("/reject/:id", auth, bookingController.RejectTour)
	bookings.DELETE("/:id", auth, bookingController.CancelBooking)

	packages := r.Group("/packages")
	packages.GET("", packageController.ListPackages)
	packages.GET("/random", packageController.SampleRandom)
	packages.GET("/:id", packageController.GetPackageByID)
	packages.POST("", auth, admin, packageController.CreatePackage)

	stories := r.Group("/stories")
	stories.GET("", storyController.ListStories)
	stories.GET("/random", storyController.SampleRandom)
	stories.POST("", auth, storyController.CreateStory)
	stories.DELETE("/:id", auth, storyController.DeleteStory)
	stories.PATCH("/:id", auth, storyController.PatchStory)

	r.POST("/payments/create-payment-intent", auth, paymentController.CreatePaymentIntent)

	r.GET("/dashboard/stats", auth, admin, dashboardController.GetStats)
}
