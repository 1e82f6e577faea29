package main

import (
	"fmt"
	"log"

	"github.com/Archismita-Das/HealthifyMe/config"
	"github.com/Archismita-Das/HealthifyMe/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.Server.Mode)

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := config.SeedFoods(db); err != nil {
		log.Fatalf("failed to seed food catalog: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
