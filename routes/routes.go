package routes

import (
	"github.com/Archismita-Das/HealthifyMe/config"
	"github.com/Archismita-Das/HealthifyMe/controllers"
	"github.com/Archismita-Das/HealthifyMe/repositories"
	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers onto the
// /api surface. The system clock is the process-wide date source;
// tests construct services with a pinned clock instead.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	clock := services.SystemClock{}

	mealSvc := services.NewMealService(repositories.NewMealRepository(db), clock)
	waterSvc := services.NewWaterService(repositories.NewWaterLogRepository(db), clock, cfg.Hydration.DailyGoalLiters)
	foodSvc := services.NewFoodService(repositories.NewFoodRepository(db))
	chatSvc := services.NewChatService(cfg.Chat)

	mealCtl := controllers.NewMealController(mealSvc)
	waterCtl := controllers.NewWaterController(waterSvc, cfg.Hydration.DefaultWindowDays)
	foodCtl := controllers.NewFoodController(foodSvc)
	chatCtl := controllers.NewChatController(chatSvc)

	api := r.Group("/api")

	api.GET("/test", controllers.Test)

	meals := api.Group("/meals")
	{
		meals.POST("", mealCtl.Log)
		meals.GET("/user/:userId", mealCtl.ListForUser)
		meals.GET("/today", mealCtl.ListToday)
		meals.GET("/date", mealCtl.ListByDate)
		meals.GET("/range", mealCtl.ListByRange)
		meals.GET("/totals", mealCtl.Totals)
	}

	water := api.Group("/water")
	{
		water.POST("/log", waterCtl.Log)
		water.POST("/add", waterCtl.Add)
		water.GET("/today/:userId", waterCtl.Today)
		water.GET("/all/:userId", waterCtl.All)
		water.GET("/history/:userId", waterCtl.History)
		water.GET("/stats/:userId", waterCtl.Stats)
		water.GET("/:userId/:date", waterCtl.ByDate)
		water.DELETE("/:userId/:date", waterCtl.Delete)
	}

	foods := api.Group("/foods")
	{
		foods.GET("", foodCtl.List)
		foods.GET("/search", foodCtl.Search)
		foods.GET("/filter", foodCtl.Filter)
		foods.GET("/stats", foodCtl.Stats)
		foods.GET("/cuisine/:cuisine", foodCtl.ByCuisine)
		foods.GET("/:id", foodCtl.Get)
	}

	api.POST("/chat", chatCtl.Chat)
	api.GET("/chat/health", chatCtl.Health)

	return r
}
