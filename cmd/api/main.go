package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/washerhq/carwash-api/internal/auth"
	"github.com/washerhq/carwash-api/internal/config"
	dbpkg "github.com/washerhq/carwash-api/internal/db"
	"github.com/washerhq/carwash-api/internal/middleware"
	"github.com/washerhq/carwash-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.SeedAdminUser(db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	var denylist *auth.Denylist
	if cfg.RedisAddr != "" {
		denylist = auth.NewDenylist(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, denylist)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
