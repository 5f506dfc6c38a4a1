package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripify/cmd/fx/accountfx"
	"tripify/cmd/fx/dbfx"
	"tripify/cmd/fx/expensefx"
	"tripify/cmd/fx/itineraryfx"
	"tripify/cmd/fx/mediafx"
	"tripify/cmd/fx/membershipfx"
	"tripify/cmd/fx/storagefx"
	"tripify/cmd/fx/tripfx"
	"tripify/internal/api/controllers"
	"tripify/internal/infra"
	"tripify/internal/repositories"
	"tripify/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		storagefx.Module,
		accountfx.Module,
		membershipfx.Module,
		tripfx.Module,
		expensefx.Module,
		itineraryfx.Module,
		mediafx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	expenseTripController *controllers.ExpenseTripController,
	expenseController *controllers.ExpenseController,
	itineraryController *controllers.ItineraryController,
	mediaController *controllers.MediaController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, userRepo,
		authController, userController, tripController,
		expenseTripController, expenseController,
		itineraryController, mediaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	expenseTripController *controllers.ExpenseTripController,
	expenseController *controllers.ExpenseController,
	itineraryController *controllers.ItineraryController,
	mediaController *controllers.MediaController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	requireAuth := middleware.JWTAuthMiddleware(userRepo)

	usersGroup := r.Group("/users", requireAuth)
	usersGroup.GET("/me", userController.GetMe)
	usersGroup.PUT("/me", userController.UpdateMe)
	usersGroup.DELETE("/me", userController.DeleteMe)

	tripsGroup := r.Group("/trips", requireAuth)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListMyTrips)
	tripsGroup.POST("/join", tripController.JoinTrip)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)

	expenseTripsGroup := r.Group("/expense-trips", requireAuth)
	expenseTripsGroup.POST("", expenseTripController.CreateTrip)
	expenseTripsGroup.GET("", expenseTripController.ListMyTrips)
	expenseTripsGroup.GET("/:tripId", expenseTripController.GetTrip)
	expenseTripsGroup.DELETE("/:tripId", expenseTripController.DeleteTrip)
	expenseTripsGroup.GET("/:tripId/summary", expenseTripController.GetSummary)

	expensesGroup := r.Group("/expenses", requireAuth)
	expensesGroup.POST("", expenseController.CreateExpense)
	expensesGroup.GET("/trip/:tripId", expenseController.ListTripExpenses)
	expensesGroup.PUT("/:expenseId", expenseController.UpdateExpense)
	expensesGroup.DELETE("/:expenseId", expenseController.DeleteExpense)

	itineraryGroup := r.Group("/itinerary", requireAuth)
	itineraryGroup.POST("/trips", itineraryController.CreateTrip)
	itineraryGroup.GET("/trips", itineraryController.ListMyTrips)
	itineraryGroup.POST("/trips/join", itineraryController.JoinTrip)
	itineraryGroup.GET("/trips/:tripId", itineraryController.GetTrip)
	itineraryGroup.PUT("/trips/:tripId", itineraryController.UpdateTrip)
	itineraryGroup.DELETE("/trips/:tripId", itineraryController.DeleteTrip)
	itineraryGroup.POST("/trips/:tripId/days", itineraryController.CreateDay)
	itineraryGroup.GET("/trips/:tripId/days", itineraryController.ListDays)
	itineraryGroup.PUT("/days/:dayId", itineraryController.UpdateDay)
	itineraryGroup.DELETE("/days/:dayId", itineraryController.DeleteDay)
	itineraryGroup.POST("/days/:dayId/activities", itineraryController.CreateActivity)
	itineraryGroup.GET("/days/:dayId/activities", itineraryController.ListActivities)
	itineraryGroup.PUT("/activities/:activityId", itineraryController.UpdateActivity)
	itineraryGroup.DELETE("/activities/:activityId", itineraryController.DeleteActivity)
	itineraryGroup.POST("/activities/:activityId/photo", itineraryController.UploadActivityPhoto)
	itineraryGroup.POST("/trips/:tripId/packing", itineraryController.CreatePackingItem)
	itineraryGroup.GET("/trips/:tripId/packing", itineraryController.ListPackingItems)
	itineraryGroup.PATCH("/packing/:itemId/toggle", itineraryController.TogglePackingItem)
	itineraryGroup.DELETE("/packing/:itemId", itineraryController.DeletePackingItem)

	mediaGroup := r.Group("/media", requireAuth)
	mediaGroup.POST("/upload", mediaController.Upload)
	mediaGroup.GET("/trip/:tripId", mediaController.ListTripMedia)
	mediaGroup.GET("/trip/:tripId/download-all", mediaController.DownloadAll)
	mediaGroup.GET("/personal", mediaController.ListPersonal)
	mediaGroup.GET("/favorites", mediaController.ListFavorites)
	mediaGroup.PATCH("/:mediaId", mediaController.UpdateMedia)
	mediaGroup.DELETE("/:mediaId", mediaController.DeleteMedia)

	// Download takes the token as a query parameter so links open in a
	// browser tab without an Authorization header.
	r.GET("/media/:mediaId/download", middleware.JWTAuthWithQueryToken(userRepo), mediaController.Download)
}
