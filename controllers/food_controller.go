package controllers

import (
	"net/http"
	"strconv"

	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

// List handles GET /api/foods.
func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.svc.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Search handles GET /api/foods/search?name=.
func (fc *FoodController) Search(c *gin.Context) {
	foods, err := fc.svc.Search(c.Query("name"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Get handles GET /api/foods/:id.
func (fc *FoodController) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}
	food, err := fc.svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// ByCuisine handles GET /api/foods/cuisine/:cuisine.
func (fc *FoodController) ByCuisine(c *gin.Context) {
	foods, err := fc.svc.ByCuisine(c.Param("cuisine"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Filter handles GET /api/foods/filter?cuisine=&diet=&type=&maxCalories=.
func (fc *FoodController) Filter(c *gin.Context) {
	filter := services.FoodFilter{
		Cuisine: c.Query("cuisine"),
		Diet:    c.Query("diet"),
		Type:    c.Query("type"),
	}
	if raw := c.Query("maxCalories"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxCalories value"})
			return
		}
		filter.MaxCalories = &max
	}

	foods, err := fc.svc.Filter(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Stats handles GET /api/foods/stats.
func (fc *FoodController) Stats(c *gin.Context) {
	stats, err := fc.svc.Stats()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
