package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"
	"github.com/Archismita-Das/HealthifyMe/repositories"
	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixedClock struct{ today time.Time }

func (c fixedClock) Today() time.Time { return c.today }

func newWaterRouter(t *testing.T, today time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.WaterLog{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc := services.NewWaterService(repositories.NewWaterLogRepository(db), fixedClock{today: today}, 2.0)
	ctl := NewWaterController(svc, 7)

	r := gin.New()
	water := r.Group("/api/water")
	{
		water.POST("/log", ctl.Log)
		water.POST("/add", ctl.Add)
		water.GET("/today/:userId", ctl.Today)
		water.GET("/stats/:userId", ctl.Stats)
		water.GET("/:userId/:date", ctl.ByDate)
		water.DELETE("/:userId/:date", ctl.Delete)
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWaterLogEndpointReplaces(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	for _, liters := range []float64{0.5, 1.2} {
		w := do(t, r, http.MethodPost, "/api/water/log",
			fmt.Sprintf(`{"userId":1,"date":"2026-08-30","liters":%v}`, liters))
		if w.Code != http.StatusOK {
			t.Fatalf("log %v: status = %d, body %s", liters, w.Code, w.Body.String())
		}
	}

	w := do(t, r, http.MethodGet, "/api/water/1/2026-08-30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}
	var log models.WaterLog
	if err := json.Unmarshal(w.Body.Bytes(), &log); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if log.Liters != 1.2 {
		t.Errorf("liters = %v, want 1.2 (replace semantics)", log.Liters)
	}
}

func TestWaterLogEndpointValidation(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	cases := []string{
		`{"date":"2026-08-30","liters":1.0}`,  // missing userId
		`{"userId":1,"liters":1.0}`,           // missing date
		`{"userId":1,"date":"2026-08-30"}`,    // missing liters
		`{"userId":1,"date":"2026-08-30","liters":-1}`, // negative
		`{"userId":1,"date":"30/08/2026","liters":1}`,  // bad date format
	}
	for _, body := range cases {
		if w := do(t, r, http.MethodPost, "/api/water/log", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestWaterAddEndpointAccumulates(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	for i := 0; i < 2; i++ {
		if w := do(t, r, http.MethodPost, "/api/water/add?userId=1&liters=0.25", ""); w.Code != http.StatusOK {
			t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
		}
	}
	if w := do(t, r, http.MethodPost, "/api/water/add?userId=1&liters=0", ""); w.Code != http.StatusBadRequest {
		t.Errorf("add zero: status = %d, want 400", w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/water/today/1", "")
	var log models.WaterLog
	if err := json.Unmarshal(w.Body.Bytes(), &log); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if log.Liters != 0.5 {
		t.Errorf("liters = %v, want 0.5", log.Liters)
	}
}

func TestWaterTodayReturns404WhenUnlogged(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	if w := do(t, r, http.MethodGet, "/api/water/today/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWaterStatsEndpoint(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	for i, liters := range []float64{2.5, 2.0, 1.5} {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		w := do(t, r, http.MethodPost, "/api/water/log",
			fmt.Sprintf(`{"userId":1,"date":"%s","liters":%v}`, date, liters))
		if w.Code != http.StatusOK {
			t.Fatalf("log: status = %d", w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/api/water/stats/1?days=7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status = %d", w.Code)
	}
	var stats services.WaterStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	want := services.WaterStats{
		TotalLiters: 6.0, AveragePerDay: 0.86, DaysLogged: 3,
		MaxInDay: 2.5, MinInDay: 1.5, GoalMet: 2,
	}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	if w := do(t, r, http.MethodGet, "/api/water/stats/1?days=0", ""); w.Code != http.StatusBadRequest {
		t.Errorf("days=0: status = %d, want 400", w.Code)
	}
}

func TestWaterDeleteEndpointIsIdempotent(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	r := newWaterRouter(t, today)

	do(t, r, http.MethodPost, "/api/water/log", `{"userId":1,"date":"2026-08-30","liters":1.0}`)

	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodDelete, "/api/water/1/2026-08-30", "")
		if w.Code != http.StatusOK {
			t.Errorf("delete #%d: status = %d, want 200", i+1, w.Code)
		}
	}
	if w := do(t, r, http.MethodGet, "/api/water/1/2026-08-30", ""); w.Code != http.StatusNotFound {
		t.Errorf("after delete: status = %d, want 404", w.Code)
	}
}
