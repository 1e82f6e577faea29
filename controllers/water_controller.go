package controllers

import (
	"net/http"
	"strconv"

	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	svc         *services.WaterService
	defaultDays int
}

func NewWaterController(svc *services.WaterService, defaultDays int) *WaterController {
	if defaultDays < 1 {
		defaultDays = 7
	}
	return &WaterController{svc: svc, defaultDays: defaultDays}
}

type logWaterBody struct {
	UserID *uint    `json:"userId"`
	Date   string   `json:"date"`
	Liters *float64 `json:"liters"`
}

// Log handles POST /api/water/log with replace semantics. If a record
// already exists for (user, date) its value is overwritten.
func (wc *WaterController) Log(c *gin.Context) {
	var body logWaterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.UserID == nil || body.Date == "" || body.Liters == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID, date and liters are required"})
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	log, err := wc.svc.Set(*body.UserID, date, *body.Liters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// Add handles POST /api/water/add with accumulate
// semantics, always against today's record.
func (wc *WaterController) Add(c *gin.Context) {
	userID, err := parseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	liters, err := strconv.ParseFloat(c.Query("liters"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid liters value"})
		return
	}

	log, err := wc.svc.Add(userID, liters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// Today handles GET /api/water/today/:userId. A day never logged is a
// 404, distinct from a logged zero.
func (wc *WaterController) Today(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	log, err := wc.svc.GetToday(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// ByDate handles GET /api/water/:userId/:date.
func (wc *WaterController) ByDate(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	log, err := wc.svc.GetForDate(userID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// All handles GET /api/water/all/:userId.
func (wc *WaterController) All(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	logs, err := wc.svc.ListAll(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (wc *WaterController) days(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("days", strconv.Itoa(wc.defaultDays))
	days, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days value"})
		return 0, false
	}
	return days, true
}

// History handles GET /api/water/history/:userId?days=7.
func (wc *WaterController) History(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	days, ok := wc.days(c)
	if !ok {
		return
	}
	logs, err := wc.svc.History(userID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Stats handles GET /api/water/stats/:userId?days=7.
func (wc *WaterController) Stats(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	days, ok := wc.days(c)
	if !ok {
		return
	}
	stats, err := wc.svc.Stats(userID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Delete handles DELETE /api/water/:userId/:date. Idempotent: deleting
// a missing day still confirms.
func (wc *WaterController) Delete(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if err := wc.svc.DeleteForDate(userID, date); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Water log deleted successfully"})
}
