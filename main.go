package main

import (
	"log"

	"github.com/ja-cob-s/cantina/configs"
	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + aggregate views
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigin))
	r.Use(middlewares.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
