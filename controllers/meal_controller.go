package controllers

import (
	"errors"
	"net/http"

	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

type logMealBody struct {
	UserID   uint     `json:"userId"`
	FoodID   *uint    `json:"foodId"`
	FoodName string   `json:"foodName"`
	Calories int      `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	MealType string   `json:"mealType"`
	Date     string   `json:"date"` // YYYY-MM-DD, defaults to today
	Quantity *float64 `json:"quantity"`
}

// Log handles POST /api/meals.
func (mc *MealController) Log(c *gin.Context) {
	var body logMealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	req := services.LogMealRequest{
		UserID:   body.UserID,
		FoodID:   body.FoodID,
		FoodName: body.FoodName,
		Calories: body.Calories,
		Protein:  body.Protein,
		Carbs:    body.Carbs,
		Fats:     body.Fats,
		MealType: body.MealType,
		Quantity: body.Quantity,
	}
	if body.Date != "" {
		date, err := parseDate(body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		req.Date = &date
	}

	meal, err := mc.svc.Log(req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to log meal: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Meal logged successfully",
		"meal":    meal,
	})
}

// ListForUser handles GET /api/meals/user/:userId.
func (mc *MealController) ListForUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	meals, err := mc.svc.ListForUser(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ListToday handles GET /api/meals/today?userId=.
func (mc *MealController) ListToday(c *gin.Context) {
	userID, err := parseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	meals, err := mc.svc.ListForToday(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ListByDate handles GET /api/meals/date?userId=&date=.
func (mc *MealController) ListByDate(c *gin.Context) {
	userID, err := parseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	meals, err := mc.svc.ListForDate(userID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ListByRange handles GET /api/meals/range?userId=&start=&end=. Both
// bounds are included.
func (mc *MealController) ListByRange(c *gin.Context) {
	userID, err := parseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date. Use YYYY-MM-DD"})
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date. Use YYYY-MM-DD"})
		return
	}
	meals, err := mc.svc.ListForRange(userID, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Totals handles GET /api/meals/totals?userId=&date=.
func (mc *MealController) Totals(c *gin.Context) {
	userID, err := parseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	totals, err := mc.svc.TotalsForDate(userID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
