package routes

import (
	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	mealSvc := services.NewMealService(db)
	hydrationSvc := services.NewHydrationService(db, hub)
	goalSvc := services.NewGoalService(db)
	statsSvc := services.NewStatsService(db)

	rekSvc, err := services.NewRekognitionService()
	if err != nil {
		logrus.WithError(err).Warn("photo recognition disabled: AWS config failed")
	}
	foodSvc := services.NewFoodService(services.NewOpenFoodFactsService(), rekSvc)

	mealCtl := controllers.NewMealController(mealSvc)
	hydrationCtl := controllers.NewHydrationController(hydrationSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	statsCtl := controllers.NewStatsController(statsSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/notifications", controllers.GetNotificationSettings)
		user.PUT("/notifications", controllers.UpdateNotificationSettings)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", goalCtl.GetGoals)
		goals.PUT("", goalCtl.UpdateGoals)
		goals.POST("/auto", goalCtl.AutoCalculateGoals)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/recent", mealCtl.RecentMeals)
		meals.PATCH("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	hydration := r.Group("/hydration")
	hydration.Use(middlewares.AuthMiddleware())
	{
		hydration.GET("/options", hydrationCtl.Options)
		hydration.POST("", hydrationCtl.Add)
		hydration.POST("/quick", hydrationCtl.QuickAdd)
		hydration.GET("", hydrationCtl.List)
		hydration.DELETE("/:id", hydrationCtl.Delete)
	}

	stats := r.Group("/stats")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/daily", statsCtl.Daily)
		stats.GET("/weekly", statsCtl.Weekly)
		stats.GET("/streak", statsCtl.Streak)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", foodCtl.Search)
		food.GET("/barcode/:code", foodCtl.Barcode)
		food.POST("/analyze", foodCtl.Analyze)
	}

	r.GET("/ws", middlewares.AuthMiddleware(), realtimeCtl.Connect)

	return r
}
